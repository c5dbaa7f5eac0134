package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJDFromHTML_BasicExtraction(t *testing.T) {
	html := `<html><body>
		<h1>Software Engineer</h1>
		<p>We need React and Node.js experience.</p>
		<ul><li>Strong DSA</li><li>SQL knowledge</li></ul>
	</body></html>`

	text, err := JDFromHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Software Engineer")
	assert.Contains(t, text, "We need React and Node.js experience.")
	assert.Contains(t, text, "Strong DSA")
	assert.Contains(t, text, "SQL knowledge")
}

func TestJDFromHTML_StripsChrome(t *testing.T) {
	html := `<html><head>
		<script>console.log("JavaScript tracker")</script>
		<style>.nav { color: red }</style>
	</head><body>
		<nav>Home | Jobs | About</nav>
		<header>MegaCorp Careers</header>
		<p>Python developer wanted.</p>
		<footer>© MegaCorp</footer>
	</body></html>`

	text, err := JDFromHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Python developer wanted.")
	assert.NotContains(t, text, "JavaScript tracker")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "MegaCorp Careers")
	assert.NotContains(t, text, "© MegaCorp")
}

func TestJDFromHTML_BlockTagsSeparateLines(t *testing.T) {
	html := `<body><h2>Requirements</h2><p>Java</p><p>SQL</p></body>`

	text, err := JDFromHTML(html)
	require.NoError(t, err)
	assert.Equal(t, "Requirements\nJava\nSQL", text)
}

func TestJDFromHTML_NoBody(t *testing.T) {
	text, err := JDFromHTML("plain text, no markup at all")
	require.NoError(t, err)
	assert.Equal(t, "plain text, no markup at all", text)
}

func TestJDFromHTML_Empty(t *testing.T) {
	text, err := JDFromHTML("")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
