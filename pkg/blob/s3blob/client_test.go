package s3blob_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"careeros/pkg/blob/s3blob"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

func newFakeS3(t *testing.T, status int) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var (
		mu   sync.Mutex
		reqs []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(b),
		})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()

		return append([]recordedRequest(nil), reqs...)
	}
}

func newClient(endpoint string) *s3blob.Client {
	cfg := aws.Config{
		Region:                     "auto",
		Credentials:                credentials.NewStaticCredentialsProvider("access", "secret", ""),
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	}

	return s3blob.NewFromConfig(cfg, s3blob.Options{
		Endpoint:   endpoint,
		Bucket:     "resumes",
		PathStyle:  true,
		PresignTTL: time.Hour,
	})
}

func TestClient_Put(t *testing.T) {
	srv, requests := newFakeS3(t, http.StatusOK)
	client := newClient(srv.URL)

	before := time.Now()
	obj, err := client.Put(context.Background(), "resumes/user_1/cv.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)

	reqs := requests()
	require.Len(t, reqs, 1)
	require.Equal(t, http.MethodPut, reqs[0].Method)
	require.Equal(t, "/resumes/resumes/user_1/cv.pdf", reqs[0].Path)
	require.Equal(t, "application/pdf", reqs[0].ContentType)
	require.Contains(t, reqs[0].Body, "%PDF-1.7")

	require.Equal(t, "resumes/user_1/cv.pdf", obj.Key)
	u, err := url.Parse(obj.URL)
	require.NoError(t, err)
	require.Equal(t, "/resumes/resumes/user_1/cv.pdf", u.Path)
	require.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	require.WithinDuration(t, before.Add(time.Hour), obj.ExpiresAt, time.Minute)
}

func TestClient_PutFails(t *testing.T) {
	srv, _ := newFakeS3(t, http.StatusForbidden)
	client := newClient(srv.URL)

	_, err := client.Put(context.Background(), "k", "application/pdf", []byte("x"))
	require.Error(t, err)
}

func TestClient_Delete(t *testing.T) {
	srv, requests := newFakeS3(t, http.StatusNoContent)
	client := newClient(srv.URL)

	require.NoError(t, client.Delete(context.Background(), "resumes/user_1/cv.pdf"))

	reqs := requests()
	require.Len(t, reqs, 1)
	require.Equal(t, http.MethodDelete, reqs[0].Method)
	require.Equal(t, "/resumes/resumes/user_1/cv.pdf", reqs[0].Path)
}
