// Package jsonlist converts the variable-shape list fields stored in single
// text columns to and from typed records.
//
// Decoding is deliberately forgiving: invalid JSON, JSON that is not a list,
// and list elements of the wrong shape all degrade to "skip" rather than
// error, because legacy rows and hand-edited columns both exist in the wild.
// Encoding is strict and surfaces a field-specific validation error.
package jsonlist

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/models"
)

// GenericFileName labels a file whose display name cannot be derived.
const GenericFileName = "文件"

// Encode serializes list to JSON. On failure the returned error wraps
// apperr.ErrInvalid and names the field so handlers can answer with a 400.
func Encode(field string, list any) (string, error) {
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("%w: invalid %s data: %v", apperr.ErrInvalid, field, err)
	}
	return string(b), nil
}

// decodeRaw parses text as a JSON array, returning nil for anything else.
func decodeRaw(text string) []any {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	return list
}

// field returns the first non-empty value among keys, trimmed.
func field(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s := strings.TrimSpace(toString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return ""
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// DecodeServices parses a stored services column. Elements that are not
// objects are skipped; detail_images/detail_files tolerate both delimited
// strings and structured lists.
func DecodeServices(text string) []models.ServiceItem {
	var out []models.ServiceItem
	for _, raw := range decodeRaw(text) {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.ServiceItem{
			Title:        field(m, "title"),
			Body:         field(m, "body"),
			Icon:         field(m, "icon"),
			DetailBody:   field(m, "detail_body"),
			DetailImages: NormalizeURLs(m["detail_images"]),
			DetailFiles:  NormalizeFileRefs(m["detail_files"]),
		})
	}
	return out
}

// DecodeStrengths parses a stored strengths column.
func DecodeStrengths(text string) []models.StrengthItem {
	var out []models.StrengthItem
	for _, raw := range decodeRaw(text) {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.StrengthItem{
			Title: field(m, "title"),
			Body:  field(m, "body"),
			Icon:  field(m, "icon"),
		})
	}
	return out
}

// DecodeHeroStats parses a stored hero-stats column. Non-numeric values
// silently become zero.
func DecodeHeroStats(text string) []models.HeroStat {
	var out []models.HeroStat
	for _, raw := range decodeRaw(text) {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.HeroStat{
			Value:  toInt(m["value"]),
			Suffix: field(m, "suffix"),
			Label:  field(m, "label"),
		})
	}
	return out
}

// DecodeConceptPoints parses a stored concept-points column.
func DecodeConceptPoints(text string) []models.ConceptPoint {
	var out []models.ConceptPoint
	for _, raw := range decodeRaw(text) {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.ConceptPoint{
			Label: field(m, "label"),
			Body:  field(m, "body"),
		})
	}
	return out
}

// DecodeStringList parses a stored list of plain strings, dropping blanks
// and non-string elements.
func DecodeStringList(text string) []string {
	var out []string
	for _, raw := range decodeRaw(text) {
		s, ok := raw.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// DecodeProfileRows parses a stored profile-rows column, keeping only rows
// where at least one of label/value is non-empty after trimming.
func DecodeProfileRows(text string) []models.ProfileRow {
	var out []models.ProfileRow
	for _, raw := range decodeRaw(text) {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		label := field(m, "label")
		value := field(m, "value")
		if label == "" && value == "" {
			continue
		}
		out = append(out, models.ProfileRow{Label: label, Value: value})
	}
	return out
}

// DecodeURLList parses a stored multi-image column where each element is
// either a plain URL string or an object with a url/src key.
func DecodeURLList(text string) []string {
	return NormalizeURLs(anyOf(decodeRaw(text)))
}

// DecodeFileRefs parses a stored multi-file column where each element is
// either a plain URL string or a {name, url} object.
func DecodeFileRefs(text string) []models.FileRef {
	return NormalizeFileRefs(anyOf(decodeRaw(text)))
}

func anyOf(list []any) any {
	if list == nil {
		return nil
	}
	return list
}

// NormalizeURLs collapses the union shape of an image-list field (delimited
// string, list of strings, list of {url|src} objects) to plain URL strings.
func NormalizeURLs(v any) []string {
	switch t := v.(type) {
	case string:
		return SplitURLText(t)
	case []any:
		var out []string
		for _, item := range t {
			var u string
			if m, ok := item.(map[string]any); ok {
				u = field(m, "url", "src")
			} else {
				u = strings.TrimSpace(toString(item))
			}
			if u != "" {
				out = append(out, u)
			}
		}
		return out
	case []string:
		var out []string
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// NormalizeFileRefs collapses the union shape of a file-list field
// (line-delimited "name|url" string, list of strings, list of {name, url}
// objects) to FileRef records. Entries without a URL are dropped.
func NormalizeFileRefs(v any) []models.FileRef {
	switch t := v.(type) {
	case string:
		return SplitFileText(t)
	case []any:
		var out []models.FileRef
		for _, item := range t {
			var ref models.FileRef
			if m, ok := item.(map[string]any); ok {
				ref = models.FileRef{Name: field(m, "name"), URL: field(m, "url")}
			} else {
				u := strings.TrimSpace(toString(item))
				ref = models.FileRef{Name: FileNameFromURL(u), URL: u}
			}
			if ref.URL == "" {
				continue
			}
			if ref.Name == "" {
				ref.Name = GenericFileName
			}
			out = append(out, ref)
		}
		return out
	default:
		return nil
	}
}

// SplitURLText splits a delimited image-URL field on commas (including the
// full-width comma) and newlines, trimming entries and dropping blanks.
func SplitURLText(s string) []string {
	s = strings.ReplaceAll(s, "，", ",")
	s = strings.ReplaceAll(s, ",", "\n")
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitFileText splits a line-delimited file field. Each line is either a
// "name|url" pair (split once on the first pipe) or a bare URL whose display
// name is derived from the URL path.
func SplitFileText(s string) []models.FileRef {
	var out []models.FileRef
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var name, u string
		if i := strings.Index(line, "|"); i >= 0 {
			name = strings.TrimSpace(line[:i])
			u = strings.TrimSpace(line[i+1:])
		} else {
			u = line
			name = FileNameFromURL(u)
		}
		if u == "" {
			continue
		}
		if name == "" {
			name = GenericFileName
		}
		out = append(out, models.FileRef{Name: name, URL: u})
	}
	return out
}

// FileNameFromURL derives a display name from the URL's path basename,
// falling back to a generic label.
func FileNameFromURL(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return GenericFileName
	}
	base := path.Base(parsed.Path)
	if base == "" || base == "." || base == "/" {
		return GenericFileName
	}
	return base
}
