package dto

// Tipos MIME de las exportaciones.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// ExportFile documento generado listo para descargar o guardar.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
