package queries

import (
	"net/http"

	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/pkg/openapi"
)

func intentValues() []string {
	values := make([]string, len(keyword.Intents))
	for i, intent := range keyword.Intents {
		values[i] = string(intent)
	}
	return values
}

func filterParams() []*openapi.Parameter {
	return []*openapi.Parameter{
		openapi.EnumParam("intent", "Keep only queries with this intent", intentValues()...),
		openapi.EnumParam("source", "Keep only queries from this source",
			string(keyword.SourceRuleEngine),
			string(keyword.SourceExternalSuggestion),
		),
	}
}

func runResponses(ok *openapi.Response) map[int]*openapi.Response {
	return map[int]*openapi.Response{
		http.StatusOK:                    ok,
		http.StatusBadRequest:            openapi.ResponseRef("BadRequest"),
		http.StatusRequestEntityTooLarge: openapi.ResponseRef("PayloadTooLarge"),
		http.StatusInternalServerError:   openapi.ResponseRef("InternalError"),
	}
}

func generateOperation() *openapi.Operation {
	return &openapi.Operation{
		Summary:     "Generate queries",
		Description: "Expands the seed, merges autocomplete suggestions, deduplicates and classifies the result. Counts cover the full result; the query page honours the filters.",
		Tags:        []string{"queries"},
		Parameters: append(filterParams(),
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
		),
		RequestBody: openapi.RequestBodyJSON("QueryRequest", true),
		Responses:   runResponses(openapi.ResponseJSON("Generated queries", "QueryResponse")),
	}
}

func exportOperation() *openapi.Operation {
	return &openapi.Operation{
		Summary:     "Export queries as CSV",
		Description: "Runs the same pipeline as generate and returns every filtered query as a query,intent,source CSV attachment.",
		Tags:        []string{"queries"},
		Parameters:  filterParams(),
		RequestBody: openapi.RequestBodyJSON("QueryRequest", true),
		Responses: runResponses(&openapi.Response{
			Description: "CSV export",
			Content: map[string]*openapi.MediaType{
				"text/csv": {Schema: &openapi.Schema{Type: "string"}},
			},
		}),
	}
}

func rulesOperation() *openapi.Operation {
	return &openapi.Operation{
		Summary:     "Active rule tables",
		Description: "Returns the expansion catalog and intent rules the pipeline applies.",
		Tags:        []string{"queries"},
		Responses: map[int]*openapi.Response{
			http.StatusOK: openapi.ResponseJSON("Rule tables", "RuleTables"),
		},
	}
}

// Schemas returns the component schemas referenced by the query operations.
func Schemas() map[string]*openapi.Schema {
	intents := make([]any, len(keyword.Intents))
	for i, intent := range keyword.Intents {
		intents[i] = string(intent)
	}

	countProps := make(map[string]*openapi.Schema, len(keyword.Intents))
	for _, intent := range keyword.Intents {
		countProps[string(intent)] = &openapi.Schema{Type: "integer"}
	}

	return map[string]*openapi.Schema{
		"QueryRequest": {
			Type:     "object",
			Required: []string{"seed"},
			Properties: map[string]*openapi.Schema{
				"seed":     {Type: "string", Description: "Seed keyword or phrase", Example: "كورس برمجة"},
				"language": {Type: "string", Description: "Language code; defaults to the configured language", Example: "ar"},
				"region":   {Type: "string", Description: "Region code; defaults to the configured region", Example: "eg"},
			},
		},
		"Locale": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"language": {Type: "string"},
				"region":   {Type: "string"},
			},
		},
		"ClassifiedQuery": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"query":  {Type: "string", Description: "Display text of the first occurrence"},
				"source": {Type: "string", Enum: []any{string(keyword.SourceRuleEngine), string(keyword.SourceExternalSuggestion)}},
				"seed":   {Type: "string"},
				"locale": openapi.SchemaRef("Locale"),
				"key":    {Type: "string", Description: "Normalized deduplication key"},
				"intent": {Type: "string", Enum: intents},
			},
		},
		"QueryResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string", Format: "uuid"},
				"seed":               {Type: "string"},
				"locale":             openapi.SchemaRef("Locale"),
				"counts":             {Type: "object", Properties: countProps},
				"suggestions_failed": {Type: "boolean", Description: "True when autocomplete was unavailable for this run"},
				"generated_at":       {Type: "string", Format: "date-time"},
				"queries": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"data":        {Type: "array", Items: openapi.SchemaRef("ClassifiedQuery")},
						"total":       {Type: "integer"},
						"page":        {Type: "integer"},
						"page_size":   {Type: "integer"},
						"total_pages": {Type: "integer"},
					},
				},
			},
		},
		"RuleTables": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"expansions": {Type: "object", Description: "Expansion templates and modifiers per language"},
				"intents":    {Type: "array", Items: &openapi.Schema{Type: "object"}, Description: "Intent rules in priority order"},
			},
		},
	}
}
