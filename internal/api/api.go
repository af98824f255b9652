// Package api holds the HTTP contract of the service: the OpenAPI document and
// the wire types generated from it.
package api

import _ "embed"

//go:generate go tool oapi-codegen -config oapi-codegen.yaml openapi.yaml

// OpenAPISpec is the raw OpenAPI document served at /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
