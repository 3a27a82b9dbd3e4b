package server

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kinship-dev/kinship/pkg/errors"
	"github.com/kinship-dev/kinship/pkg/session"
)

// sessionResponse is the body returned when a session is created.
type sessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// individualRequest is the body for adding or renaming an individual.
type individualRequest struct {
	Name string `json:"name"`
}

// relationRequest is the body for adding a relation.
type relationRequest struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
}

func (s *Server) createSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.reg.add()
	s.logger.Debug("session created", "id", sess.ID)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: sess.ID, CreatedAt: sess.CreatedAt})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !s.reg.remove(id) {
		writeError(w, errors.New(errors.ErrCodeSessionNotFound, "no session %q", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// withSession resolves the session from the URL and runs fn with the
// session's mutation lock held. All session handlers go through here, so
// operations on one graph never interleave.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(sess *session.Session)) {
	id := chi.URLParam(r, "sessionID")
	e, ok := s.reg.get(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeSessionNotFound, "no session %q", id))
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.sess)
}

func (s *Server) getTree(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) {
		writeJSON(w, http.StatusOK, sess.Hierarchy())
	})
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) {
		snap := sess.Snapshot()
		writeJSON(w, http.StatusOK, map[string]any{
			"individuals": snap.People,
			"relations":   snap.Relations,
		})
	})
}

func (s *Server) addIndividual(w http.ResponseWriter, r *http.Request) {
	var req individualRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.withSession(w, r, func(sess *session.Session) {
		if err := sess.AddIndividual(req.Name); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

func (s *Server) renameIndividual(w http.ResponseWriter, r *http.Request) {
	var req individualRequest
	if !decodeBody(w, r, &req) {
		return
	}
	oldName := pathName(r)
	s.withSession(w, r, func(sess *session.Session) {
		if err := sess.RenameIndividual(oldName, req.Name); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) removeIndividual(w http.ResponseWriter, r *http.Request) {
	name := pathName(r)
	s.withSession(w, r, func(sess *session.Session) {
		if err := sess.RemoveIndividual(name); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) addRelation(w http.ResponseWriter, r *http.Request) {
	var req relationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.withSession(w, r, func(sess *session.Session) {
		if err := sess.AddRelation(req.Parent, req.Child); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

func (s *Server) removeRelation(w http.ResponseWriter, r *http.Request) {
	parent := r.URL.Query().Get("parent")
	child := r.URL.Query().Get("child")
	s.withSession(w, r, func(sess *session.Session) {
		if err := sess.RemoveRelation(parent, child); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// importFunc runs one import format against a session.
type importFunc func(sess *session.Session, r io.Reader, merge bool) (session.ImportReport, error)

func importCSV(sess *session.Session, r io.Reader, merge bool) (session.ImportReport, error) {
	return sess.ImportCSV(r, merge)
}

func importGEDCOM(sess *session.Session, r io.Reader, merge bool) (session.ImportReport, error) {
	return sess.ImportGEDCOM(r, merge)
}

func (s *Server) importFile(do importFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merge := r.URL.Query().Get("merge") == "true"
		body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
		s.withSession(w, r, func(sess *session.Session) {
			report, err := do(sess, body, merge)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, report)
		})
	}
}

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		if err := sess.ExportCSV(w); err != nil {
			s.logger.Error("export csv", "err", err)
		}
	})
}

func (s *Server) exportGEDCOM(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := sess.ExportGEDCOM(w); err != nil {
			s.logger.Error("export gedcom", "err", err)
		}
	})
}

func (s *Server) exportJSON(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := sess.ExportJSON(w); err != nil {
			s.logger.Error("export json", "err", err)
		}
	})
}

// pathName extracts and unescapes the {name} URL parameter.
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
