package catalog

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// FromOpenAPI builds a catalog from an OpenAPI 3.x document, for running the
// dispatcher against a newer API revision than the bundled tables.
// Operations without an operationId are skipped; ids are taken verbatim.
func FromOpenAPI(data []byte) (*Catalog, error) {
	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version: %s (only 3.x supported)", version)
	}

	model, err := doc.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI model: %w", err)
	}

	operations := make(map[string]Mapping)
	var secMap SecurityMap

	if model.Model.Paths == nil || model.Model.Paths.PathItems == nil {
		return New(operations, secMap), nil
	}

	for pair := model.Model.Paths.PathItems.Oldest(); pair != nil; pair = pair.Next() {
		path := pair.Key
		item := pair.Value

		entry := SecurityEntry{Path: path, Methods: map[string][]string{}}
		for _, mo := range methodOperations(item) {
			if mo.op == nil {
				continue
			}
			if mo.op.OperationId != "" {
				operations[mo.op.OperationId] = Mapping{Path: path, Method: mo.method}
			}

			schemes := operationSchemes(mo.op, &model.Model)
			if schemes != nil {
				entry.Methods[string(mo.method)] = schemes
			}
		}
		if len(entry.Methods) > 0 {
			secMap = append(secMap, entry)
		}
	}

	return New(operations, secMap), nil
}

type methodOperation struct {
	method Method
	op     *v3.Operation
}

func methodOperations(item *v3.PathItem) []methodOperation {
	return []methodOperation{
		{MethodGet, item.Get},
		{MethodPost, item.Post},
		{MethodPut, item.Put},
		{MethodPatch, item.Patch},
		{MethodDelete, item.Delete},
		{MethodHead, item.Head},
		{MethodOptions, item.Options},
	}
}

// operationSchemes flattens the operation's security requirements (falling
// back to the document-level requirements) into an ordered scheme name list.
// A nil return means no security was declared anywhere; an empty non-nil
// slice means security was explicitly disabled for the operation.
func operationSchemes(op *v3.Operation, doc *v3.Document) []string {
	reqs := op.Security
	if reqs == nil {
		reqs = doc.Security
	}
	if reqs == nil {
		return nil
	}

	schemes := []string{}
	for _, req := range reqs {
		if req.Requirements == nil {
			continue
		}
		for pair := req.Requirements.Oldest(); pair != nil; pair = pair.Next() {
			schemes = append(schemes, pair.Key)
		}
	}
	return schemes
}
