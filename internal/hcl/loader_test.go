package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDescription writes one description file into a fresh temp dir and
// returns the file path.
func writeDescription(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full description", func(t *testing.T) {
		path := writeDescription(t, "main.hcl", `
locals {
  prefix = "/opt/vendor"
}

target "app" {}

package "zlib" {
  handle = "ZLIB::ZLIB"
}

package "legacypng" {
  include_dirs = ["${local.prefix}/include", "${local.prefix}/include/png"]
  libraries    = ["png", "z", "png"]
  library_dirs = ["${local.prefix}/lib"]
  definitions  = ["PNG_STATIC"]
}

attach "app" {
  packages        = ["zlib", "legacypng"]
  scope           = "PRIVATE"
  system_includes = true
}
`)

		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)

		require.Len(t, model.Targets, 1)
		assert.Equal(t, "app", model.Targets[0].Name)

		require.Len(t, model.Packages, 2)
		assert.Equal(t, "ZLIB::ZLIB", model.Packages["zlib"].Handle)

		png := model.Packages["legacypng"]
		require.NotNil(t, png)
		assert.Equal(t, []string{"/opt/vendor/include", "/opt/vendor/include/png"}, png.IncludeDirs)
		assert.Equal(t, []string{"png", "z", "png"}, png.Libraries, "the loader must not deduplicate")
		assert.Equal(t, []string{"/opt/vendor/lib"}, png.LibraryDirs)
		assert.Equal(t, []string{"PNG_STATIC"}, png.Definitions)

		require.Len(t, model.Attachments, 1)
		att := model.Attachments[0]
		assert.Equal(t, "app", att.Target)
		assert.Equal(t, []string{"zlib", "legacypng"}, att.Packages)
		assert.Equal(t, "PRIVATE", att.Scope)
		assert.True(t, att.SystemIncludes)
	})

	t.Run("directory with multiple files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "targets.hcl"), []byte(`
target "app" {}
target "lib" {}
`), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "packages.hcl"), []byte(`
package "m" {
  libraries = ["m"]
}

attach "app" {
  packages = ["m"]
}
`), 0o600))

		model, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Len(t, model.Targets, 2)
		assert.Len(t, model.Packages, 1)
		require.Len(t, model.Attachments, 1)
		assert.Empty(t, model.Attachments[0].Scope)
		assert.False(t, model.Attachments[0].SystemIncludes)
	})

	t.Run("unknown attribute in attach block is rejected", func(t *testing.T) {
		path := writeDescription(t, "bad.hcl", `
target "app" {}

attach "app" {
  packages = []
  bogus    = true
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("syntax error is surfaced with the file name", func(t *testing.T) {
		path := writeDescription(t, "broken.hcl", `target "app" {`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
		assert.Contains(t, err.Error(), "broken.hcl")
	})

	t.Run("duplicate package across files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`package "z" {}`+"\n"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`package "z" {}`+"\n"), 0o600))

		_, err := NewLoader().Load(context.Background(), dir)
		assert.ErrorContains(t, err, "duplicate package: z")
	})

	t.Run("duplicate target", func(t *testing.T) {
		path := writeDescription(t, "dup.hcl", `
target "app" {}
target "app" {}
`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "duplicate target: app")
	})

	t.Run("duplicate local", func(t *testing.T) {
		path := writeDescription(t, "locals.hcl", `
locals {
  prefix = "/a"
}

locals {
  prefix = "/b"
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "duplicate local: prefix")
	})

	t.Run("metadata must be a list of strings", func(t *testing.T) {
		path := writeDescription(t, "types.hcl", `
package "bad" {
  libraries = 42
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "package bad")
		assert.Contains(t, err.Error(), "libraries")
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read description path")
	})
}
