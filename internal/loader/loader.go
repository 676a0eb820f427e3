package loader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	validator "github.com/pb33f/libopenapi-validator"

	"github.com/solvberg/pygmalion/internal/generr"
)

type Result struct {
	Document *libopenapi.DocumentModel[v3.Document]
	Version  string
	Warnings []string
}

// Load reads an OpenAPI document from a local path or an http(s) URL.
func Load(source string) (*Result, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return LoadURL(source)
	}
	return LoadFile(source)
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	config := &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	}

	return loadWithConfig(data, config)
}

func LoadURL(url string) (*Result, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching spec from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching spec from %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading spec from %s: %w", url, err)
	}

	return loadWithConfig(data, nil)
}

func loadWithConfig(data []byte, config *datamodel.DocumentConfiguration) (*Result, error) {
	var doc libopenapi.Document
	var err error

	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(data, config)
	} else {
		doc, err = libopenapi.NewDocument(data)
	}
	if err != nil {
		return nil, generr.InvalidSpecf("parsing OpenAPI document: %v", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, generr.InvalidSpecf("unsupported OpenAPI version %s (only 3.x supported)", version)
	}

	model, err := doc.BuildV3Model()
	if err != nil {
		return nil, generr.InvalidSpecf("building OpenAPI model: %v", err)
	}

	result := &Result{
		Document: model,
		Version:  version,
	}

	docValidator, validatorErrs := validator.NewValidator(doc)
	if len(validatorErrs) > 0 {
		return nil, generr.InvalidSpecf("building document validator: %v", validatorErrs[0])
	}
	if valid, validationErrs := docValidator.ValidateDocument(); !valid {
		// Structural violations are reported but do not block generation;
		// the transform degrades whatever it cannot model.
		for _, ve := range validationErrs {
			result.Warnings = append(result.Warnings, fmt.Sprintf("document validation: %s", ve.Message))
		}
	}

	if strings.HasPrefix(version, "3.0") {
		result.Warnings = append(result.Warnings, "OpenAPI 3.0.x detected; some 3.1 features unavailable")
	}

	return result, nil
}
