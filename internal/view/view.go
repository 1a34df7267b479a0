package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates memuat seluruh template HTML yang di-embed ke binary.
// Hasilnya dipasang ke renderer Gin lewat SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// Branding adalah header konfigurasi yang muncul di setiap halaman.
type Branding struct {
	DisplayName   string
	Slogan        string
	BackgroundURL string // kosong berarti halaman render tanpa background
}

type EmployeeRow struct {
	ID         uint
	Name       string
	Department string
	Salary     string
	StartDate  string
}

type ListData struct {
	Branding  Branding
	Employees []EmployeeRow
}

type FormData struct {
	Branding Branding
	Action   string // target POST form
	IsEdit   bool
	Employee EmployeeRow
	Errors   map[string]string // pesan per-field untuk re-render form
}

type ErrorData struct {
	Branding Branding
	Status   int
	Message  string
}
