package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CatalogFile is the catalog document at the root of an asset tree.
const CatalogFile = "catalog.yaml"

// BaseDir is the asset directory holding files shared by every template.
const BaseDir = "base"

//go:embed assets/catalog.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// TemplateDescriptor identifies one selectable template.
type TemplateDescriptor struct {
	Key         string   `yaml:"key" json:"key"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Files       []string `yaml:"files" json:"files"`
}

// Catalog is the parsed catalog document.
type Catalog struct {
	BaseFiles  []string             `yaml:"base_files"`
	Stylesheet string               `yaml:"stylesheet"`
	Markup     string               `yaml:"markup"`
	Templates  []TemplateDescriptor `yaml:"templates"`
}

// SchemaIssue is a single catalog schema violation.
type SchemaIssue struct {
	Path    string // Instance location (e.g., "/templates/0/key")
	Message string
	Keyword string
}

// CatalogError reports every schema violation found in a catalog document.
type CatalogError struct {
	Issues []SchemaIssue
}

func (e *CatalogError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return "invalid template catalog: " + strings.Join(msgs, "; ")
}

// ParseCatalog validates raw YAML against the catalog schema and decodes it.
// Schema violations are returned as *CatalogError.
func ParseCatalog(data []byte) (*Catalog, error) {
	if err := validateCatalog(data); err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	// Constraints JSON Schema cannot express across array items.
	var issues []SchemaIssue
	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		if seen[t.Key] {
			issues = append(issues, SchemaIssue{
				Path:    fmt.Sprintf("/templates/%d/key", i),
				Message: fmt.Sprintf("duplicate template key %q", t.Key),
				Keyword: "unique",
			})
		}
		seen[t.Key] = true
	}
	if !slices.Contains(c.BaseFiles, c.Stylesheet) {
		issues = append(issues, SchemaIssue{
			Path:    "/stylesheet",
			Message: fmt.Sprintf("stylesheet %q is not listed in base_files", c.Stylesheet),
			Keyword: "contains",
		})
	}
	if len(issues) > 0 {
		return nil, &CatalogError{Issues: issues}
	}

	return &c, nil
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("catalog.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

func validateCatalog(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading catalog schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing catalog YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-native types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting catalog to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing catalog for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &CatalogError{Issues: extractIssues(ve)}
}

// extractIssues flattens the ValidationError tree into leaf issues.
func extractIssues(ve *jsonschema.ValidationError) []SchemaIssue {
	var issues []SchemaIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []SchemaIssue{{Message: ve.Error()}}
	}

	seen := make(map[string]bool, len(issues))
	out := issues[:0]
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, issue)
	}
	return out
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]SchemaIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword, msg := "", ""
	if ve.ErrorKind != nil {
		keyword = keywordOf(ve.ErrorKind)
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	*issues = append(*issues, SchemaIssue{Path: path, Message: msg, Keyword: keyword})
}

// keywordOf names the schema keyword behind an error kind. Some kinds report
// no keyword path and are named by type; structural wrappers stay empty.
func keywordOf(k jsonschema.ErrorKind) string {
	if kw := k.KeywordPath(); len(kw) > 0 {
		return kw[len(kw)-1]
	}
	switch k.(type) {
	case *kind.Not:
		return "not"
	case *kind.FalseSchema:
		return "false"
	default:
		return ""
	}
}
