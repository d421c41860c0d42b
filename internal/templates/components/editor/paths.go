package editor

import "net/url"

// SectionListID is the element replaced after any change to the section order.
const SectionListID = "pc-sections"

func ProjectsPath() string {
	return "/projects"
}

func EditorPath(projectID string) string {
	return "/projects/" + url.PathEscape(projectID) + "/editor"
}

func ExportPath(projectID string) string {
	return "/projects/" + url.PathEscape(projectID) + "/export"
}

func projectAPI(projectID string) string {
	return "/api/v1/projects/" + url.PathEscape(projectID)
}

func SectionsPath(projectID string) string {
	return projectAPI(projectID) + "/sections"
}

func PublishPath(projectID string) string {
	return projectAPI(projectID) + "/publish"
}

func ThemePath(projectID string) string {
	return projectAPI(projectID) + "/theme"
}

func ThemeColorsPath(projectID string) string {
	return ThemePath(projectID) + "/colors"
}

func ThemeFontsPath(projectID string) string {
	return ThemePath(projectID) + "/fonts"
}

func sectionPath(projectID, sectionID string) string {
	return SectionsPath(projectID) + "/" + url.PathEscape(sectionID)
}

// ShellID is the element id of the editor shell around one section.
func ShellID(sectionID string) string {
	return "pc-shell-" + sectionID
}
