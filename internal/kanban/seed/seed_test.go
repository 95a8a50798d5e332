package seed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kanbo/internal/kanban/models"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

type fakeObjects struct {
	objects map[string][]byte
	getErr  error
	putErr  error
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "missing"}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

type stubProvider struct {
	name    string
	columns []models.Column
	err     error
	calls   int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Fetch(context.Context) ([]models.Column, error) {
	s.calls++
	return s.columns, s.err
}

func TestFallback(t *testing.T) {
	columns, err := Fallback{Now: func() time.Time { return fixedNow }}.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, columns, 3)
	assert.Equal(t, "To Do", columns[0].Title)
	assert.Equal(t, "In Progress", columns[1].Title)
	assert.Equal(t, "Done", columns[2].Title)
	assert.Len(t, columns[0].Cards, 2)
	assert.Len(t, columns[1].Cards, 1)
	assert.Len(t, columns[2].Cards, 1)

	assert.Equal(t, "2026-03-10", columns[0].Cards[1].DueDateString())
	assert.Equal(t, models.DueActive, columns[0].Cards[1].DueStatus(fixedNow))
	assert.Equal(t, "2026-03-05", columns[2].Cards[0].DueDateString())
	assert.Equal(t, models.DueOverdue, columns[2].Cards[0].DueStatus(fixedNow))
}

func TestLoad_FirstSuccessWins(t *testing.T) {
	broken := &stubProvider{name: "broken", err: errors.New("boom")}
	missing := &stubProvider{name: "missing", err: ErrUnavailable}
	empty := &stubProvider{name: "empty", columns: []models.Column{}}
	good := &stubProvider{name: "good", columns: []models.Column{{Title: "Only"}}}
	never := &stubProvider{name: "never", columns: []models.Column{{Title: "Other"}}}

	result := Load(context.Background(), fixedNow, broken, nil, missing, empty, good, never)

	assert.Equal(t, "good", result.Source)
	assert.Equal(t, "Only", result.Columns[0].Title)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 0, never.calls)
}

func TestLoad_FallsBackToSample(t *testing.T) {
	result := Load(context.Background(), fixedNow, &stubProvider{name: "down", err: errors.New("timeout")})

	assert.Equal(t, "sample", result.Source)
	assert.Len(t, result.Columns, 3)
}

func TestDecode(t *testing.T) {
	data := []byte(`[
		{"title": "To Do", "cards": [
			{"text": "A", "description": "first", "dueDate": "2026-01-02"},
			{"text": "B", "dueDate": "not a date"}
		]},
		{"title": "Done", "cards": []}
	]`)

	columns, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, columns, 2)
	assert.Equal(t, "A", columns[0].Cards[0].Text)
	assert.Equal(t, "first", columns[0].Cards[0].Description)
	assert.Equal(t, "2026-01-02", columns[0].Cards[0].DueDateString())
	assert.Nil(t, columns[0].Cards[1].DueDate)
	assert.Empty(t, columns[1].Cards)

	_, err = Decode([]byte(`{"title": 1}`))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	due := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	snapshot := models.Snapshot{Columns: []models.Column{
		{ID: "x", Title: "Col", Cards: []models.Card{{ID: "y", Text: "Card", DueDate: &due}}},
	}}

	data, err := Encode(snapshot)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"x"`, "ids are not part of the document")

	columns, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Col", columns[0].Title)
	assert.Equal(t, "2026-07-01", columns[0].Cards[0].DueDateString())
}

func TestS3Source(t *testing.T) {
	objects := &fakeObjects{}
	source := NewS3Source(objects, S3Config{Bucket: "boards"})
	assert.Equal(t, "s3://boards/board.json", source.Name())

	_, err := source.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	snapshot := models.Snapshot{Columns: []models.Column{{Title: "Published", Cards: []models.Card{{Text: "c"}}}}}
	require.NoError(t, source.Publish(context.Background(), snapshot))

	columns, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Published", columns[0].Title)
	assert.Equal(t, "c", columns[0].Cards[0].Text)
}

func TestS3Source_Errors(t *testing.T) {
	objects := &fakeObjects{getErr: errors.New("connection refused"), putErr: errors.New("denied")}
	source := NewS3Source(objects, S3Config{Bucket: "b", Key: "k.json"})

	_, err := source.Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnavailable))

	assert.Error(t, source.Publish(context.Background(), models.Snapshot{}))
}

func TestDirSource(t *testing.T) {
	_, err := DirSource{}.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	dir := t.TempDir()
	_, err = DirSource{Dir: dir}.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cards"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "board.md"), []byte("# B\n\n## Todo\n\n[Task](./cards/task.md)\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards", "task.md"), []byte("# Task\n"), 0644))

	columns, err := DirSource{Dir: dir}.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, "Task", columns[0].Cards[0].Text)
}

func TestS3ConfigEnabled(t *testing.T) {
	assert.False(t, S3Config{}.Enabled())
	assert.True(t, S3Config{Bucket: "b"}.Enabled())
}
