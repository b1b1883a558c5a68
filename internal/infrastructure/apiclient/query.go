package apiclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"golang.org/x/text/unicode/norm"
)

// queryEncoder serializa los structs de query a url.Values (tag `schema`).
var queryEncoder = schema.NewEncoder()

type pageQuery struct {
	Page     int `schema:"page"`
	PageSize int `schema:"pageSize"`
}

type searchQuery struct {
	Term     string `schema:"term"`
	Page     int    `schema:"page"`
	PageSize int    `schema:"pageSize"`
}

type idQuery struct {
	ID int `schema:"id"`
}

// encodeQuery convierte src en url.Values. El escape se hace en Values.Encode.
// src debe ser uno de los structs de query de este paquete; cualquier otro
// valor es un error de programación y provoca panic.
func encodeQuery(src any) url.Values {
	values := url.Values{}
	if err := queryEncoder.Encode(src, values); err != nil {
		panic(fmt.Sprintf("apiclient: query %T no codificable: %v", src, err))
	}
	return values
}

// NormalizeTerm recorta el término y lo lleva a forma NFC para que las
// variantes compuestas y descompuestas de un mismo carácter se escapen igual.
func NormalizeTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}
