package render

import (
	"fmt"
	"strings"
	"time"
)

// OutputBase derives the default output filename (without extension)
// from the project name and generation date:
// {Project_Name}-{YYYY-MM-DD}_Gantt
func OutputBase(projectName string, generated time.Time) string {
	slug := strings.ReplaceAll(projectName, " ", "_")
	return fmt.Sprintf("%s-%s_Gantt", slug, generated.Format("2006-01-02"))
}

// ResolveFormats expands the --format flag into the list of file
// extensions to write.
func ResolveFormats(flag string) ([]string, error) {
	switch flag {
	case "png", "pdf", "svg":
		return []string{flag}, nil
	case "both":
		return []string{"png", "pdf"}, nil
	}
	return nil, fmt.Errorf("unsupported format %q: expected png, pdf, svg or both", flag)
}
