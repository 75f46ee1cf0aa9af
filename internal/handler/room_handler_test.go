package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-review-backend/internal/config"
	"room-review-backend/internal/registry"
	"room-review-backend/internal/service"
	"room-review-backend/internal/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.RoomService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	offices := config.Offices{
		"MG": {
			Name: "Mario Garnero",
			Floors: map[string]config.FloorConfig{
				"2": {MaxRooms: 2},
				"9": {MaxRooms: 5},
			},
		},
	}

	dir := t.TempDir()
	store := storage.NewFileStore(filepath.Join(dir, "rooms.json"))
	svc := service.NewRoomService(registry.New(offices, nil), store, nil)

	r := gin.New()
	roomHandler := NewRoomHandler(svc, filepath.Join(dir, "fotos"))
	exportHandler := NewExportHandler(svc)

	rooms := r.Group("/rooms")
	{
		rooms.GET("", roomHandler.ListRooms)
		rooms.POST("", roomHandler.CreateRoom)
		rooms.POST("/delete", roomHandler.BulkDelete)
		rooms.GET("/:id", roomHandler.GetRoom)
		rooms.PUT("/:id", roomHandler.RecordReview)
		rooms.DELETE("/:id", roomHandler.DeleteRoom)
		rooms.GET("/:id/history", roomHandler.GetHistory)
		rooms.GET("/:id/export", exportHandler.ExportHistory)
	}

	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateRoomEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/rooms", `{"office": "MG", "floor": "9"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	room := body["data"].(map[string]any)["room"].(map[string]any)
	assert.Equal(t, "9.1", room["number"])
	assert.Equal(t, "mg-9.1", room["id"])
}

func TestCreateRoomRejectsBadInput(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/rooms", `{"office": "MG"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/rooms", `{"office": "XX", "floor": "9"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomFloorFullConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/rooms", `{"office": "MG", "floor": "2"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/rooms", `{"office": "MG", "floor": "2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListRoomsEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)

	_, err := svc.CreateRoom("MG", "9")
	require.NoError(t, err)
	_, err = svc.CreateRoom("MG", "2")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/rooms?office=MG&floor=9", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])
}

func TestGetRoomNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/rooms/mg-9.1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordReviewEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)

	room, err := svc.CreateRoom("MG", "9")
	require.NoError(t, err)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("tv", "true"))
	require.NoError(t, form.WriteField("monitor", "on"))
	require.NoError(t, form.WriteField("note", "cabo HDMI com defeito"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPut, "/rooms/"+room.ID, &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := svc.Room(room.ID)
	require.NoError(t, err)
	require.Len(t, got.History, 1)
	assert.True(t, got.Equipment.TV)
	assert.True(t, got.Equipment.Monitor)
	assert.False(t, got.Equipment.RemoteControl)
	assert.Equal(t, "cabo HDMI com defeito", got.LastNote)
}

func TestRecordReviewUnknownRoom(t *testing.T) {
	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("tv", "true"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPut, "/rooms/mg-9.1", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRoomIsIdempotentOverHTTP(t *testing.T) {
	r, svc := newTestRouter(t)

	room, err := svc.CreateRoom("MG", "9")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/rooms/"+room.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/rooms/"+room.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBulkDeleteEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)

	a, err := svc.CreateRoom("MG", "9")
	require.NoError(t, err)
	b, err := svc.CreateRoom("MG", "9")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/rooms/delete", `{"ids": ["`+a.ID+`", "mg-missing", "`+b.ID+`"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["requested"])
	assert.Equal(t, float64(2), data["deleted"])
}

func TestGetHistoryRejectsBadDates(t *testing.T) {
	r, svc := newTestRouter(t)

	room, err := svc.CreateRoom("MG", "9")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/rooms/"+room.ID+"/history?start=primeiro-de-abril", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/rooms/"+room.ID+"/history?start=2026-01-01&end=2026-02-01", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportHistoryEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)

	room, err := svc.CreateRoom("MG", "9")
	require.NoError(t, err)

	// Nothing reviewed yet: the selection is empty and the export refuses.
	w := doJSON(t, r, http.MethodGet, "/rooms/"+room.ID+"/export", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, err = svc.RecordReview(room.ID, registry.ReviewInput{Note: "OK"})
	require.NoError(t, err)

	w = doJSON(t, r, http.MethodGet, "/rooms/"+room.ID+"/export?format=csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "historico-9.1-")
	assert.Contains(t, w.Body.String(), "Data/Hora;Sala")

	w = doJSON(t, r, http.MethodGet, "/rooms/"+room.ID+"/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasSuffix(w.Header().Get("Content-Disposition"), ".json"))

	w = doJSON(t, r, http.MethodGet, "/rooms/"+room.ID+"/export?format=xml", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
