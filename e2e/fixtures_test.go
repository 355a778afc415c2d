//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

const backendPageSize = 12

type stubProperty struct {
	ID           string              `json:"_id"`
	Name         string              `json:"propertyName"`
	Price        int                 `json:"price"`
	PropertyType string              `json:"propertyType"`
	RoomType     string              `json:"roomType"`
	Amenities    []string            `json:"amenities"`
	Address      map[string]string   `json:"address"`
	Images       []map[string]string `json:"images"`
}

type stubUser struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	CreatedAt   string `json:"createdAt"`
}

// StubBackend is an in-memory marketplace backend
type StubBackend struct {
	*httptest.Server

	mu         sync.Mutex
	properties []stubProperty
	user       stubUser
	updates    []map[string]string
	rejectWith string
}

// CreateTestWorkspace creates a temporary directory used as $HOME and working directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// StartBackend serves n properties named "Stay 00".. and a signed-in user
func (tf *TUITestFramework) StartBackend(n int) *StubBackend {
	tf.t.Helper()
	b := &StubBackend{
		user: stubUser{
			ID:        "u1",
			Name:      "Asha",
			Email:     "asha@example.com",
			CreatedAt: "2024-03-02T10:00:00Z",
		},
	}
	for i := 0; i < n; i++ {
		kind, amenities := "house", []string{"Wifi"}
		if i%2 == 1 {
			kind, amenities = "flat", []string{"Kitchen", "Pool"}
		}
		b.properties = append(b.properties, stubProperty{
			ID:           fmt.Sprintf("p%02d", i),
			Name:         fmt.Sprintf("Stay %02d", i),
			Price:        1000 + i*100,
			PropertyType: kind,
			RoomType:     "Entire Home",
			Amenities:    amenities,
			Address:      map[string]string{"city": "Pune", "state": "MH", "pincode": "411001"},
			Images:       []map[string]string{{"url": fmt.Sprintf("https://img.example/%02d.jpg", i)}},
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/rent/listing", b.listing)
	mux.HandleFunc("GET /api/v1/rent/user/me", b.me)
	mux.HandleFunc("PATCH /api/v1/rent/user/updateMe", b.updateMe)
	b.Server = httptest.NewServer(mux)
	tf.t.Cleanup(b.Close)
	return b
}

// RejectUpdates makes the next profile updates fail with message
func (b *StubBackend) RejectUpdates(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rejectWith = message
}

// Updates returns the profile update bodies received so far
func (b *StubBackend) Updates() []map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]string(nil), b.updates...)
}

func (b *StubBackend) listing(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	start := (page - 1) * backendPageSize
	end := start + backendPageSize
	if start > len(b.properties) {
		start = len(b.properties)
	}
	if end > len(b.properties) {
		end = len(b.properties)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"properties":      b.properties[start:end],
		"totalProperties": len(b.properties),
	})
}

func (b *StubBackend) me(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"user": b.user})
}

func (b *StubBackend) updateMe(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "bad request"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.updates = append(b.updates, body)
	if b.rejectWith != "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{b.rejectWith}})
		return
	}
	if v := body["name"]; v != "" {
		b.user.Name = v
	}
	if v := body["phoneNumber"]; v != "" {
		b.user.PhoneNumber = v
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": b.user})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
