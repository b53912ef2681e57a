package v1

import (
	"net/http"
	"strconv"
)

// IntQuery читает целочисленный query-параметр, отдавая def при отсутствии
// или мусоре на входе.
func IntQuery(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
