// Package http 提供表单页面
package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bcdiag/ml"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type featureField struct {
	Name  string
	Label string
}

type featureGroup struct {
	Title  string
	Fields []featureField
}

type indexData struct {
	Groups      []featureGroup
	ModelType   string
	NFeatures   int
	Performance ml.Performance
	DemoMode    bool
}

// featureGroups 把特征表分成均值、标准误差、最差值三栏，组内保持原顺序
var featureGroups = buildFeatureGroups()

func buildFeatureGroups() []featureGroup {
	title := cases.Title(language.English)
	groups := []featureGroup{
		{Title: "Mean"},
		{Title: "Standard Error"},
		{Title: "Worst"},
	}
	suffixes := []string{"_mean", "_se", "_worst"}

	for _, name := range ml.FeatureNames {
		for i, suffix := range suffixes {
			if !strings.HasSuffix(name, suffix) {
				continue
			}
			base := strings.ReplaceAll(strings.TrimSuffix(name, suffix), "_", " ")
			groups[i].Fields = append(groups[i].Fields, featureField{
				Name:  name,
				Label: title.String(base),
			})
			break
		}
	}
	return groups
}

// handleIndex 渲染输入表单页面
func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	meta := ml.ModelMetadata()
	data := indexData{
		Groups:      featureGroups,
		ModelType:   meta.ModelType,
		NFeatures:   meta.NFeatures,
		Performance: meta.Performance(),
		DemoMode:    ml.DemoMode,
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		h.log.Error("render index page", zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug("write index page", zap.Error(err))
	}
}
