package utils

import (
	"net/url"
	"strings"
)

const waBaseURL = "https://wa.me/"

// OrderLink builds the WhatsApp deep link used as the "Pedir" call to action.
// The message greets the shop and names the product. Grid cards and the detail
// modal must produce identical links, so both go through this function.
func OrderLink(phone, productName string) string {
	message := "Hola! Me interesa " + productName
	return waBaseURL + phone + "?text=" + encodeMessage(message)
}

// encodeMessage percent-encodes the free-text message for use in a query
// string, with spaces as %20 rather than '+' so the link works as a plain
// navigation target.
func encodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
