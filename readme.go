package isbnapi

import _ "embed"

// Readme is served as the OpenAPI description.
//
//go:embed README.md
var Readme string
