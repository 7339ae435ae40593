package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// artifactShell wraps a generated fragment into a standalone document so a
// saved log can be opened directly in a browser. Tailwind comes from the CDN,
// same as the live frontend.
const artifactShell = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <script src="https://cdn.tailwindcss.com"></script>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap" rel="stylesheet">
    <style>body { font-family: 'Inter', sans-serif; }</style>
</head>
<body class="p-10 bg-slate-50">
    %s
</body>
</html>
`

// WriteArtifact persists one generation under ui_<YYYYMMDD_HHMMSS>.html and
// returns the filename. Second-resolution names can collide under burst
// traffic; last write wins.
func WriteArtifact(dir, html string, now time.Time) (string, error) {
	filename := fmt.Sprintf("ui_%s.html", now.Format("20060102_150405"))
	doc := fmt.Sprintf(artifactShell, html)
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(doc), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
