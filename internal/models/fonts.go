package models

import "fmt"

// FontCollection is a named preset of the three font roles offered by the theme
// customizer.
type FontCollection struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	Name        string     `json:"name" yaml:"name" validate:"required"`
	Fonts       ThemeFonts `json:"fonts" yaml:"fonts"`
	Description string     `json:"description" yaml:"description"`
}

func (f FontCollection) Validate() error {
	if err := validatorInstance().Struct(f); err != nil {
		return fmt.Errorf("font collection %q: %w", f.ID, err)
	}
	return nil
}
