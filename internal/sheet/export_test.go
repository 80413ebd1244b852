package sheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
)

func TestExportSource_URL(t *testing.T) {
	test := assertions.New(t)

	s := ExportSource{SheetID: "abc123"}
	test.So(s.URL(), should.Equal, "https://docs.google.com/spreadsheets/d/abc123/export?format=csv&gid=0")
	test.So(s.ViewURL(), should.Equal, "https://docs.google.com/spreadsheets/d/abc123")

	s = ExportSource{SheetID: "abc123", GID: "42", BaseURL: "http://localhost:8080/"}
	test.So(s.URL(), should.Equal, "http://localhost:8080/spreadsheets/d/abc123/export?format=csv&gid=42")
}

func TestExportSource_Keys(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        []string
		wantErr     string
	}{
		{
			name:        "ok",
			status:      http.StatusOK,
			contentType: "text/csv; charset=utf-8",
			body:        "\ufeffkey,vi,en\nprofile_name,Tên,Name\n,,\nlogin_button,Đăng nhập,Log in\nprofile_name,x,y\n",
			want:        []string{"profile_name", "login_button", "profile_name"},
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			contentType: "text/plain",
			body:        "missing",
			wantErr:     "404",
		},
		{
			name:        "private sheet",
			status:      http.StatusOK,
			contentType: "text/html; charset=utf-8",
			body:        "<html>sign in</html>",
			wantErr:     "not publicly accessible",
		},
		{
			name:        "empty body",
			status:      http.StatusOK,
			contentType: "text/csv",
			body:        "  \n",
			wantErr:     "empty response",
		},
		{
			name:        "header only",
			status:      http.StatusOK,
			contentType: "text/csv",
			body:        "key,en\n",
			wantErr:     ErrNoKeys.Error(),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			test := assertions.New(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				test.So(r.URL.Path, should.Equal, "/spreadsheets/d/sheet123/export")
				test.So(r.URL.Query().Get("format"), should.Equal, "csv")
				test.So(r.URL.Query().Get("gid"), should.Equal, "7")
				test.So(r.UserAgent(), should.ContainSubstring, "Mozilla/5.0")

				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := ExportSource{SheetID: "sheet123", GID: "7", BaseURL: srv.URL, Client: srv.Client()}
			got, err := s.Keys(context.Background())
			if tt.wantErr != "" {
				if test.So(err, should.NotBeNil) {
					test.So(err.Error(), should.ContainSubstring, tt.wantErr)
				}
				return
			}
			test.So(err, should.BeNil)
			test.So(got, should.Resemble, tt.want)
		})
	}
}

func TestExportSource_KeysNoSheetID(t *testing.T) {
	test := assertions.New(t)

	_, err := ExportSource{}.Keys(context.Background())
	test.So(err, should.NotBeNil)
}

func TestExportSource_KeysErrNoKeys(t *testing.T) {
	test := assertions.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("key\n \n"))
	}))
	defer srv.Close()

	_, err := ExportSource{SheetID: "s", BaseURL: srv.URL}.Keys(context.Background())
	test.So(errors.Is(err, ErrNoKeys), should.BeTrue)
}
