package sections

import (
	"encoding/json"
	"strconv"

	"github.com/codr1/pagecraft/internal/content"
)

// EditEndpoints are the callback URLs the editing view posts to. They already address
// one section; the renderer never persists anything itself.
type EditEndpoints struct {
	Field      string
	AddItem    string
	RemoveItem string
	Raw        string
	Delete     string
	MoveUp     string
	MoveDown   string
	Toggle     string
	// Target is the selector of the element replaced after a field change.
	Target string
	// ListTarget is the selector of the element replaced after an order change.
	ListTarget string
}

// HxVals encodes name/value pairs as the JSON of an hx-vals attribute.
func HxVals(pairs ...string) string {
	vals := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		vals[pairs[i]] = pairs[i+1]
	}
	raw, err := json.Marshal(vals)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func editorOpen(m *Markup, v View, e EditEndpoints) {
	m.Open("div", "class", "pc-editor", "data-section-id", v.Section.ID, "data-section-type", v.Section.Type)
	m.Open("div", "class", "pc-editor-head")
	m.Elem("strong", fallbackTitle(v))
	m.Elem("span", v.Section.Type, "class", "pc-muted")
	m.Close("div")
	Toolbar(m, v.Section.ID, ModeEditing, e)
}

func editorClose(m *Markup) {
	m.Close("div")
	m.Newline()
}

// Toolbar writes the per-section controls: mode toggle, move and delete.
func Toolbar(m *Markup, sectionID string, mode Mode, e EditEndpoints) {
	m.Open("div", "class", "pc-toolbar", "data-section-id", sectionID)

	toggleLabel := "Edit"
	if mode == ModeEditing {
		toggleLabel = "Done"
	}
	m.Elem("button", toggleLabel,
		"type", "button", "class", "pc-tool",
		"hx-post", e.Toggle, "hx-vals", HxVals("mode", mode.Toggle().String()),
		"hx-target", e.Target, "hx-swap", "outerHTML",
	)
	for _, b := range []struct{ label, url string }{
		{"Move up", e.MoveUp},
		{"Move down", e.MoveDown},
	} {
		m.Elem("button", b.label,
			"type", "button", "class", "pc-tool",
			"hx-post", b.url, "hx-target", e.ListTarget, "hx-swap", "outerHTML",
		)
	}
	m.Elem("button", "Delete",
		"type", "button", "class", "pc-tool pc-tool-danger",
		"hx-post", e.Delete, "hx-confirm", "Delete this section?",
		"hx-target", e.ListTarget, "hx-swap", "outerHTML",
	)
	m.Close("div")
}

// schemaEditor builds the form editor of a family from its field list.
func schemaEditor(fields []Field) EditFragment {
	return func(m *Markup, v View, e EditEndpoints) {
		m.Open("div", "class", "pc-form-fields")
		for _, f := range fields {
			writeField(m, f, f.Key, v.Content[f.Key], e)
		}
		m.Close("div")
		rawEditor(m, v, e, false)
	}
}

func writeField(m *Markup, f Field, path string, value any, e EditEndpoints) {
	switch f.Kind {
	case FieldList:
		writeList(m, f, path, value, e)
	case FieldButton:
		b := content.Content{"button": value}.Button("button")
		m.Open("fieldset", "class", "pc-fieldset")
		m.Elem("legend", f.Label)
		writeInput(m, "Label", path+".label", "text", b.Label, e)
		writeInput(m, "Link", path+".url", "url", b.URL, e)
		m.Close("fieldset")
	case FieldTextArea, FieldMarkdown:
		m.Open("label", "class", "pc-field")
		m.Elem("span", f.Label)
		m.Open("textarea",
			"name", "value", "rows", rowsFor(f.Kind),
			"hx-post", e.Field, "hx-trigger", "change", "hx-vals", HxVals("path", path),
			"hx-target", e.Target, "hx-swap", "outerHTML",
		)
		m.Text(stringValue(value))
		m.Close("textarea")
		m.Close("label")
	case FieldToggle:
		current := content.Content{"v": value}.Bool("v")
		m.Open("label", "class", "pc-field")
		m.Elem("span", f.Label)
		m.Open("select",
			"name", "value",
			"hx-post", e.Field, "hx-trigger", "change", "hx-vals", HxVals("path", path),
			"hx-target", e.Target, "hx-swap", "outerHTML",
		)
		m.Elem("option", "Yes", "value", "true", "selected", strconv.FormatBool(current))
		m.Elem("option", "No", "value", "false", "selected", strconv.FormatBool(!current))
		m.Close("select")
		m.Close("label")
	case FieldNumber:
		writeInput(m, f.Label, path, "number", stringValue(value), e)
	case FieldURL:
		writeInput(m, f.Label, path, "url", stringValue(value), e)
	case FieldImage:
		writeInput(m, f.Label, path, "url", stringValue(value), e)
		picture(m, stringValue(value), f.Label, "pc-field-thumb")
	default:
		writeInput(m, f.Label, path, "text", stringValue(value), e)
	}
}

func writeInput(m *Markup, label, path, kind, value string, e EditEndpoints) {
	m.Open("label", "class", "pc-field")
	m.Elem("span", label)
	m.Void("input",
		"type", kind, "name", "value", "value", value,
		"hx-post", e.Field, "hx-trigger", "change", "hx-vals", HxVals("path", path),
		"hx-target", e.Target, "hx-swap", "outerHTML",
	)
	m.Close("label")
}

func writeList(m *Markup, f Field, path string, value any, e EditEndpoints) {
	entries := content.Content{"list": value}.List("list")
	m.Open("fieldset", "class", "pc-fieldset pc-list", "data-list", path)
	m.Elem("legend", f.Label+" ("+strconv.Itoa(len(entries))+")")
	for i, entry := range entries {
		index := strconv.Itoa(i)
		m.Open("div", "class", "pc-list-item", "data-index", index)
		for _, sub := range f.Item {
			writeField(m, sub, path+"."+index+"."+sub.Key, entry[sub.Key], e)
		}
		m.Elem("button", "Remove",
			"type", "button", "class", "pc-tool pc-tool-danger",
			"hx-post", e.RemoveItem, "hx-vals", HxVals("key", path, "index", index),
			"hx-target", e.Target, "hx-swap", "outerHTML",
		)
		m.Close("div")
	}
	m.Elem("button", "Add "+singular(f.Label),
		"type", "button", "class", "pc-tool",
		"hx-post", e.AddItem, "hx-vals", HxVals("key", path),
		"hx-target", e.Target, "hx-swap", "outerHTML",
	)
	m.Close("fieldset")
}

func rowsFor(kind FieldKind) string {
	if kind == FieldMarkdown {
		return "10"
	}
	return "3"
}

func stringValue(v any) string {
	return content.Content{"v": v}.String("v")
}

func singular(label string) string {
	if n := len(label); n > 1 && label[n-1] == 's' {
		return label[:n-1]
	}
	return "item"
}
