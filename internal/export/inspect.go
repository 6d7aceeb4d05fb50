package export

import (
	"bytes"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu must not create its config directory in the user's home.
	api.DisableConfigDir()
}

func isPDF(extension string) bool {
	return strings.EqualFold(extension, "pdf")
}

// pageCount returns the number of pages of a PDF document.
func pageCount(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.PageCount(bytes.NewReader(data), conf)
}
