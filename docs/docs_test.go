package docs

import (
	"encoding/json"
	"testing"
)

func TestDocumentListsRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger document is not valid json: %v", err)
	}

	routes := map[string]string{
		"/health":                    "get",
		"/simulation/cancel":         "post",
		"/simulation/add":            "post",
		"/simulation/combined":       "post",
		"/simulation/apply":          "post",
		"/simulation/undo":           "post",
		"/dashboard/summary":         "get",
		"/dashboard/recommendations": "get",
		"/dashboard/upcoming":        "get",
	}
	for path, method := range routes {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("%s %s missing from swagger document", method, path)
		}
	}
}
