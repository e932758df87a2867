package metagen_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/brandforge/metagen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := metagen.Errorf(metagen.ENOTFOUND, "brand %q not found", "b1")

	assert.Equal(t, metagen.ENOTFOUND, metagen.ErrorCode(err))
	assert.Equal(t, "brand \"b1\" not found", metagen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, metagen.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, metagen.EINTERNAL, metagen.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, metagen.ErrorMessage(nil))
}

func TestMetadataRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts request with brand and URLs", func(t *testing.T) {
		t.Parallel()

		req := &metagen.MetadataRequest{
			BrandID: "b1",
			URLs:    []string{"https://example.com/a"},
		}
		require.NoError(t, req.Validate())
	})

	t.Run("accepts request with brand and sitemap URL", func(t *testing.T) {
		t.Parallel()

		req := &metagen.MetadataRequest{
			BrandID:    "b1",
			SitemapURL: "https://example.com",
		}
		require.NoError(t, req.Validate())
	})

	t.Run("rejects missing brand ID", func(t *testing.T) {
		t.Parallel()

		req := &metagen.MetadataRequest{URLs: []string{"https://example.com/a"}}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, metagen.EINVALID, metagen.ErrorCode(err))
	})

	t.Run("rejects empty URL list", func(t *testing.T) {
		t.Parallel()

		req := &metagen.MetadataRequest{BrandID: "b1", URLs: []string{}}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, metagen.EINVALID, metagen.ErrorCode(err))
	})
}

func TestSuccessResult(t *testing.T) {
	t.Parallel()

	result := metagen.SuccessResult("https://example.com/a", &metagen.GeneratedMetadata{
		Title:         "Title",
		Description:   "Description",
		OGTitle:       "OG Title",
		OGDescription: "OG Description",
	})

	assert.Equal(t, metagen.StatusSuccess, result.Status)
	assert.Empty(t, result.Error)
	assert.NotEmpty(t, result.PageTitle)
	assert.NotEmpty(t, result.MetaDescription)
	assert.NotEmpty(t, result.OGTitle)
	assert.NotEmpty(t, result.OGDescription)
}

func TestErrorResult(t *testing.T) {
	t.Parallel()

	t.Run("keeps metadata fields empty", func(t *testing.T) {
		t.Parallel()

		result := metagen.ErrorResult("https://example.com/a",
			metagen.Errorf(metagen.EINTERNAL, "fetch timed out"))

		assert.Equal(t, metagen.StatusError, result.Status)
		assert.Equal(t, "fetch timed out", result.Error)
		assert.Empty(t, result.PageTitle)
		assert.Empty(t, result.MetaDescription)
		assert.Empty(t, result.OGTitle)
		assert.Empty(t, result.OGDescription)
	})

	t.Run("never produces an empty error message", func(t *testing.T) {
		t.Parallel()

		result := metagen.ErrorResult("https://example.com/a", nil)
		assert.NotEmpty(t, result.Error)
	})
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in input order", func(t *testing.T) {
		t.Parallel()

		results := []*metagen.MetadataResult{
			{
				URL:             "https://example.com/a",
				PageTitle:       "A",
				MetaDescription: "About A",
				OGTitle:         "A",
				OGDescription:   "About A",
				Status:          metagen.StatusSuccess,
			},
			{
				URL:    "https://example.com/b",
				Status: metagen.StatusError,
				Error:  "fetch failed",
			},
		}

		var buf bytes.Buffer
		require.NoError(t, metagen.WriteCSV(&buf, results))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "url,page_title,meta_description,og_title,og_description,status,error", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "https://example.com/a,A,"))
		assert.Equal(t, "https://example.com/b,,,,,error,fetch failed", lines[2])
	})

	t.Run("writes only header for empty result set", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, metagen.WriteCSV(&buf, nil))
		assert.Equal(t, 1, strings.Count(strings.TrimSpace(buf.String()), "\n")+1)
	})
}
