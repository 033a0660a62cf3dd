package utils

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize title-cases a display string (account names, categories).
func Capitalize(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (fn roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return fn(r)
}

// DebugRoundTripper dumps every request and response to stdout. Used behind
// the CLI --debug flag.
func DebugRoundTripper() http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		d, _ := httputil.DumpRequest(r, true)
		fmt.Println(string(d))
		res, err := http.DefaultTransport.RoundTrip(r)
		if err == nil {
			d, _ = httputil.DumpResponse(res, true)
			fmt.Println(string(d))
		}
		return res, err
	})
}
