package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvetax/transcript-service/dto"
)

func storeWithSession(t *testing.T) *SessionStore {
	t.Helper()
	st := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	err := st.Put([]dto.SessionCookie{
		{Name: "ASP.NET_SessionId", Value: "abc123"},
		{Name: ".AUTH", Value: "token"},
	}, "TestAgent/1.0")
	require.NoError(t, err)
	return st
}

func TestFetchDocumentGrid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/API/Document/gridBind", r.URL.Path)
		assert.Equal(t, "555123", r.URL.Query().Get("caseid"))
		assert.Equal(t, "ASP.NET_SessionId=abc123; .AUTH=token", r.Header.Get("Cookie"))
		assert.Equal(t, "TestAgent/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Result":[
			{"Name":"WI 23 TP.pdf","CaseDocumentID":101},
			{"Name":"AT 23 E.pdf","CaseDocumentID":"102"},
			{"Name":"TI 6.7 Smith.pdf","CaseDocumentID":103},
			{"Name":"engagement letter.pdf","CaseDocumentID":104},
			{"Name":"","CaseDocumentID":105}
		]}`))
	}))
	defer srv.Close()

	lc := NewLogiqsClient(srv.URL, storeWithSession(t))
	docs, err := lc.FetchDocumentGrid(context.Background(), "555123")
	require.NoError(t, err)
	require.Len(t, docs, 4)
	assert.Equal(t, "101", docs[0].CaseDocumentID)

	wi := FilterWIFiles(docs)
	require.Len(t, wi, 1)
	assert.Equal(t, "WI 23 TP.pdf", wi[0].FileName)

	at := FilterATFiles(docs)
	require.Len(t, at, 1)
	assert.Equal(t, "AT 23 E.pdf", at[0].FileName)

	ti := FilterTIFiles(docs)
	require.Len(t, ti, 1)
	assert.Equal(t, "TI 6.7 Smith.pdf", ti[0].FileName)
}

func TestFilterWIFilesAcceptsOwnerTokens(t *testing.T) {
	docs := []CaseDocument{
		{FileName: "WI 23 TP.pdf", CaseDocumentID: "1"},
		{FileName: "WI S 23.pdf", CaseDocumentID: "2"},
		{FileName: "WI SPOUSE 19.pdf", CaseDocumentID: "3"},
		{FileName: "WI TP 21.pdf", CaseDocumentID: "4"},
		{FileName: "WI 19.pdf", CaseDocumentID: "5"},
		{FileName: "AT 23 E.pdf", CaseDocumentID: "6"},
		{FileName: "engagement letter.pdf", CaseDocumentID: "7"},
	}

	wi := FilterWIFiles(docs)
	require.Len(t, wi, 5)
	for _, doc := range wi {
		assert.Contains(t, doc.FileName, "WI")
	}
}

func TestFetchDocumentGridAuthExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "https://portal.example.com/Login.aspx")
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	lc := NewLogiqsClient(srv.URL, storeWithSession(t))
	_, err := lc.FetchDocumentGrid(context.Background(), "555123")
	assert.ErrorIs(t, err, dto.ErrAuthExpired)
}

func TestFetchDocumentGridNoSession(t *testing.T) {
	st := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	lc := NewLogiqsClient("http://unused", st)
	_, err := lc.FetchDocumentGrid(context.Background(), "555123")
	assert.ErrorIs(t, err, dto.ErrNoCookies)
}

func TestDownloadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/API/Document/DownloadFile", r.URL.Path)
		assert.Equal(t, "101", r.URL.Query().Get("CaseDocumentID"))
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	lc := NewLogiqsClient(srv.URL, storeWithSession(t))
	data, err := lc.DownloadDocument(context.Background(), "101", "555123")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), data)
}

func TestSessionStorePersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewSessionStore(path)
	require.NoError(t, first.Put([]dto.SessionCookie{{Name: "a", Value: "1"}}, ""))

	second := NewSessionStore(path)
	sess, err := second.Get()
	require.NoError(t, err)
	assert.Equal(t, "a=1", sess.CookieHeader())
	assert.Equal(t, defaultUserAgent, sess.UserAgent)
}
