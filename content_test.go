package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleContent = `
profile:
  name: Test Person
  initials: TP
  role: Gopher
  about: Writes **Go**.
  links:
    - icon: github
      label: GitHub
      url: https://github.com/test
skills:
  - icon: code
    name: Go
  - icon: database
    name: SQLite
projects:
  - title: Demo
    description: A demo.
    demo: https://demo.example.com
    source: https://github.com/test/demo
    video:
      embed: https://www.youtube.com/embed/abc
      watch: https://youtu.be/abc
      title: Demo video
  - title: Plain
`

func TestLoadContent(t *testing.T) {
	t.Parallel()

	c, err := LoadContent(strings.NewReader(sampleContent))
	require.NoError(t, err)

	assert.Equal(t, "Test Person", c.Profile.Name)
	require.Len(t, c.Profile.Links, 1)
	assert.Equal(t, IconGithub, c.Profile.Links[0].Icon)

	require.Len(t, c.Skills, 2)
	assert.Equal(t, Skill{Icon: IconCode, Name: "Go"}, c.Skills[0])
	assert.Equal(t, Skill{Icon: IconDatabase, Name: "SQLite"}, c.Skills[1])

	require.Len(t, c.Projects, 2)
	require.NotNil(t, c.Projects[0].Video)
	assert.Equal(t, "https://www.youtube.com/embed/abc", c.Projects[0].Video.EmbedURL)
	assert.Nil(t, c.Projects[1].Video)
	assert.Empty(t, c.Projects[1].DemoURL)
}

func TestLoadContentRejectsUnknownIcon(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(sampleContent, "icon: database", "icon: sparkle", 1)
	_, err := LoadContent(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown icon "sparkle"`)
}

func TestLoadContentReportsMissingFields(t *testing.T) {
	t.Parallel()

	doc := `
profile:
  role: nobody
skills:
  - icon: code
projects:
  - description: untitled
`
	_, err := LoadContent(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile.name (required)")
	assert.Contains(t, err.Error(), "skills[0].name (required)")
	assert.Contains(t, err.Error(), "projects[0].title (required)")
}

func TestLoadContentRejectsVideoWithoutEmbed(t *testing.T) {
	t.Parallel()

	doc := `
profile:
  name: Someone
projects:
  - title: Clip
    video:
      watch: https://youtu.be/abc
`
	_, err := LoadContent(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects[0].video.embed (required)")
}

func TestLoadContentRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := LoadContent(strings.NewReader("profile:\n  name: A\n  nickname: B\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nickname")
}

func TestLoadContentEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := LoadContent(strings.NewReader(""))
	require.EqualError(t, err, "content document is empty")
}

func TestLoadContentFile(t *testing.T) {
	t.Parallel()

	c, err := LoadContentFile("")
	require.NoError(t, err)
	assert.Len(t, c.Skills, 15)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleContent), 0o644))
	c, err = LoadContentFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Person", c.Profile.Name)

	_, err = LoadContentFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read content file")
}

func TestDefaultContent(t *testing.T) {
	t.Parallel()

	c := DefaultContent()
	require.NoError(t, ValidateContent(c))
	assert.Len(t, c.Skills, 15)
	assert.Len(t, c.Projects, 7)

	for _, p := range c.Projects {
		assert.Equal(t, p.Title == "FocusFuze", p.Video != nil, "video on %q", p.Title)
	}

	// Each call hands out independent slices.
	c.Skills[0].Name = "changed"
	assert.Equal(t, "React", DefaultContent().Skills[0].Name)
}

func TestContentYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	orig := DefaultContent()
	data, err := yaml.Marshal(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "icon: git-branch")

	decoded, err := LoadContent(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, orig.Skills, decoded.Skills)
	assert.Equal(t, orig.Projects, decoded.Projects)
	assert.Equal(t, orig.Profile, decoded.Profile)
}
