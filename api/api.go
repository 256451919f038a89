// Package api embeds the OpenAPI document served by the HTTP adapter.
// internal/generated/servers is generated from it with oapi-codegen.
package api

import (
	_ "embed"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yml openapi.yml

//go:embed openapi.yml
var Spec []byte
