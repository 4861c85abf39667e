// Package forms converts raw repeating admin-form fields (parallel arrays
// indexed positionally) into structured records.
//
// All builders share the same rules: arrays may have unequal lengths (missing
// positions read as empty), every field is trimmed, and a row whose fields
// are all empty after trimming is dropped. Builders never fail; malformed
// numeric input becomes zero.
package forms

import (
	"strconv"
	"strings"

	"github.com/eihojp/corpsite/internal/jsonlist"
	"github.com/eihojp/corpsite/internal/models"
)

// at returns the trimmed i-th element of values, or "" beyond its length.
func at(values []string, i int) string {
	if i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}

func maxLen(slices ...[]string) int {
	n := 0
	for _, s := range slices {
		if len(s) > n {
			n = len(s)
		}
	}
	return n
}

// BuildStrengths pairs up title/body/icon columns into strength records.
func BuildStrengths(titles, bodies, icons []string) []models.StrengthItem {
	var out []models.StrengthItem
	for i := 0; i < maxLen(titles, bodies, icons); i++ {
		title, body, icon := at(titles, i), at(bodies, i), at(icons, i)
		if title == "" && body == "" && icon == "" {
			continue
		}
		out = append(out, models.StrengthItem{Title: title, Body: body, Icon: icon})
	}
	return out
}

// BuildHeroStats pairs up value/suffix/label columns. Values that fail to
// parse as integers become zero.
func BuildHeroStats(values, suffixes, labels []string) []models.HeroStat {
	var out []models.HeroStat
	for i := 0; i < maxLen(values, suffixes, labels); i++ {
		raw, suffix, label := at(values, i), at(suffixes, i), at(labels, i)
		if raw == "" && suffix == "" && label == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			value = 0
		}
		out = append(out, models.HeroStat{Value: value, Suffix: suffix, Label: label})
	}
	return out
}

// BuildConceptPoints pairs up label/body columns.
func BuildConceptPoints(labels, bodies []string) []models.ConceptPoint {
	var out []models.ConceptPoint
	for i := 0; i < maxLen(labels, bodies); i++ {
		label, body := at(labels, i), at(bodies, i)
		if label == "" && body == "" {
			continue
		}
		out = append(out, models.ConceptPoint{Label: label, Body: body})
	}
	return out
}

// BuildProfileRows pairs up label/value columns.
func BuildProfileRows(labels, values []string) []models.ProfileRow {
	var out []models.ProfileRow
	for i := 0; i < maxLen(labels, values); i++ {
		label, value := at(labels, i), at(values, i)
		if label == "" && value == "" {
			continue
		}
		out = append(out, models.ProfileRow{Label: label, Value: value})
	}
	return out
}

// BuildStringList trims values and drops blanks, preserving order.
func BuildStringList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// BuildServices pairs up the service columns, additionally parsing the two
// delimited sub-fields per row: detailImages (comma/newline separated URLs)
// and detailFiles ("name|url" lines or bare URLs).
func BuildServices(titles, bodies, icons, detailBodies, detailImages, detailFiles []string) []models.ServiceItem {
	var out []models.ServiceItem
	n := maxLen(titles, bodies, icons, detailBodies, detailImages, detailFiles)
	for i := 0; i < n; i++ {
		title, body, icon := at(titles, i), at(bodies, i), at(icons, i)
		detailBody := at(detailBodies, i)
		images := jsonlist.SplitURLText(at(detailImages, i))
		files := jsonlist.SplitFileText(at(detailFiles, i))
		if title == "" && body == "" && icon == "" && detailBody == "" && len(images) == 0 && len(files) == 0 {
			continue
		}
		out = append(out, models.ServiceItem{
			Title:        title,
			Body:         body,
			Icon:         icon,
			DetailBody:   detailBody,
			DetailImages: images,
			DetailFiles:  files,
		})
	}
	return out
}

// PickProfileRowValue extracts the first non-empty value whose label matches
// one of the given aliases, ignoring case and embedded spaces. The admin
// form uses it to keep the legacy fixed profile columns in sync with the
// dynamic row list.
func PickProfileRowValue(rows []models.ProfileRow, labels ...string) string {
	wanted := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if key := normalizeLabel(l); key != "" {
			wanted[key] = struct{}{}
		}
	}
	for _, row := range rows {
		value := strings.TrimSpace(row.Value)
		if value == "" {
			continue
		}
		if _, ok := wanted[normalizeLabel(row.Label)]; ok {
			return value
		}
	}
	return ""
}

func normalizeLabel(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}
