package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

// Template names understood by the email worker.
const (
	Welcome = "welcome"
)

var welcomeHTML = htmltpl.Must(htmltpl.New("welcome_html").Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to the bookstore</h2>
    <p>Hi {{.Email}},</p>
    <p>Your account was created successfully. You can now log in and start
    managing your catalog.</p>
  </body>
</html>
`))

var welcomeText = texttpl.Must(texttpl.New("welcome_text").Parse(
	`Hi {{.Email}},

Your bookstore account was created successfully. You can now log in and start managing your catalog.
`))

// Render produces subject, text and HTML bodies for the named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var tb, hb bytes.Buffer
		if err = welcomeText.Execute(&tb, data); err != nil {
			return
		}
		if err = welcomeHTML.Execute(&hb, data); err != nil {
			return
		}
		return "Welcome to the bookstore", tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
