package usecases

import (
	"html/template"
	"sort"
	"strings"

	"athlete-intake/pkg/helper"
)

type fieldRow struct {
	Label string
	Value string
}

type emailData struct {
	Fields    []fieldRow
	VideoURLs []string
	ImageURLs []string
}

var emailTmpl = template.Must(template.New("submission").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
<h2>New athlete submission</h2>
<table cellpadding="6" cellspacing="0" border="0">
{{- range .Fields}}
<tr><td style="font-weight: bold; vertical-align: top;">{{.Label}}</td><td>{{.Value}}</td></tr>
{{- end}}
</table>
{{- if .VideoURLs}}
<h3>Videos</h3>
<ul>
{{- range .VideoURLs}}
<li><a href="{{.}}">{{.}}</a></li>
{{- end}}
</ul>
{{- end}}
{{- if .ImageURLs}}
<h3>Images</h3>
{{- range .ImageURLs}}
<p><a href="{{.}}"><img src="{{.}}" alt="submitted image" style="max-width: 480px;"/></a></p>
{{- end}}
{{- end}}
</body>
</html>
`))

// renderEmailBody embeds every submitted field, label-cased from its key,
// plus every media URL. Fields are sorted by key so the layout is stable.
func renderEmailBody(form map[string]string, videoURLs, imageURLs []string) (string, error) {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := emailData{
		VideoURLs: videoURLs,
		ImageURLs: imageURLs,
	}
	for _, k := range keys {
		data.Fields = append(data.Fields, fieldRow{
			Label: helper.LabelCase(k),
			Value: form[k],
		})
	}

	var b strings.Builder
	if err := emailTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
