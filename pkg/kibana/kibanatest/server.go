// Package kibanatest runs an in-process fake Kibana for tests: a scripted
// status endpoint, a settings endpoint and a saved-object capture.
package kibanatest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type SavedObjectRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]interface{}
}

type Server struct {
	mu sync.Mutex

	statusStates []string
	statusCalls  int
	version      string

	defaultIndex string

	failStatusCodes map[string]int
	requests        []*SavedObjectRequest
	savedObjects    map[string]map[string]interface{}

	httpServer *httptest.Server
}

func NewServer() *Server {
	s := &Server{
		statusStates:    []string{"green"},
		version:         "6.8.0",
		failStatusCodes: make(map[string]int),
		savedObjects:    make(map[string]map[string]interface{}),
	}

	engine := gin.New()
	engine.GET("/api/status", s.onStatus)
	engine.GET("/api/kibana/settings", s.onSettings)
	engine.POST("/api/saved_objects/:type/:id", s.onSavedObject)

	s.httpServer = httptest.NewServer(engine)
	return s
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Close() {
	s.httpServer.Close()
}

// WithStatusSequence scripts the overall states reported by consecutive
// status calls; the last state repeats forever.
func (s *Server) WithStatusSequence(states ...string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusStates = states
	return s
}

func (s *Server) WithVersion(version string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version = version
	return s
}

func (s *Server) WithDefaultIndex(indexId string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultIndex = indexId
	return s
}

// FailSavedObject makes the upsert of one saved object answer with the given
// status code.
func (s *Server) FailSavedObject(recordType, recordID string, statusCode int) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatusCodes[recordType+"/"+recordID] = statusCode
	return s
}

func (s *Server) StatusCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusCalls
}

// Requests returns a deep copy of all captured saved-object requests.
func (s *Server) Requests() []*SavedObjectRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var requests []*SavedObjectRequest
	_ = copier.CopyWithOption(&requests, &s.requests, copier.Option{DeepCopy: true})
	return requests
}

// SavedObject returns the stored attributes of one upserted object.
func (s *Server) SavedObject(recordType, recordID string) (map[string]interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attributes, ok := s.savedObjects[recordType+"/"+recordID]
	if !ok {
		return nil, false
	}

	var copied map[string]interface{}
	_ = copier.CopyWithOption(&copied, &attributes, copier.Option{DeepCopy: true})
	return copied, true
}

func (s *Server) onStatus(c *gin.Context) {
	s.mu.Lock()
	state := s.statusStates[len(s.statusStates)-1]
	if s.statusCalls < len(s.statusStates) {
		state = s.statusStates[s.statusCalls]
	}
	s.statusCalls++
	version := s.version
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": gin.H{
			"overall": gin.H{"state": state},
		},
		"version": gin.H{"number": version},
	})
}

func (s *Server) onSettings(c *gin.Context) {
	s.mu.Lock()
	defaultIndex := s.defaultIndex
	s.mu.Unlock()

	settings := gin.H{}
	if defaultIndex != "" {
		settings["defaultIndex"] = gin.H{"userValue": defaultIndex}
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (s *Server) onSavedObject(c *gin.Context) {
	if c.GetHeader("kbn-xsrf") == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Request must contain a kbn-xsrf header",
		})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	recordType := c.Param("type")
	recordID := c.Param("id")

	s.mu.Lock()
	s.requests = append(s.requests, &SavedObjectRequest{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.Query(),
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	statusCode, failed := s.failStatusCodes[recordType+"/"+recordID]
	if !failed {
		attributes, _ := body["attributes"].(map[string]interface{})
		s.savedObjects[recordType+"/"+recordID] = attributes
	}
	s.mu.Unlock()

	if failed {
		c.JSON(statusCode, gin.H{
			"message": fmt.Sprintf("injected failure for %s/%s", recordType, recordID),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": recordID, "type": recordType})
}
