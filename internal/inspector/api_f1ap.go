package inspector

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/free5gc/f1ap/pkg/codec"
	"github.com/free5gc/f1ap/pkg/model"
)

const contentTypeOctetStream = "application/octet-stream"

type DecodeResponse struct {
	MessageType string          `json:"messageType"`
	Message     model.Message   `json:"message"`
	Warnings    []codec.Warning `json:"warnings,omitempty"`
}

type EncodeRequest struct {
	MessageType string          `json:"messageType" binding:"required"`
	Message     json.RawMessage `json:"message" binding:"required"`
}

type EncodeResponse struct {
	MessageType string `json:"messageType"`
	Hex         string `json:"hex"`
	Length      int    `json:"length"`
}

func (s *Server) HTTPMessageTypes(c *gin.Context) {
	types := model.MessageTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	c.JSON(http.StatusOK, names)
}

// HTTPDecode takes the PDU either as raw bytes (application/octet-stream) or
// as hex text. ?type= restricts the accepted message type.
func (s *Server) HTTPDecode(c *gin.Context) {
	log := requestLog(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.GetInspectorMaxBodySize())
	raw, err := c.GetRawData()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeProblem(c, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", err.Error())
			return
		}
		writeProblem(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	b := raw
	if c.ContentType() != contentTypeOctetStream {
		if b, err = DecodeHex(string(raw)); err != nil {
			writeProblem(c, http.StatusBadRequest, "INVALID_HEX", err.Error())
			return
		}
	}

	want := model.MessageTypeUnknown
	if t := c.Query("type"); t != "" {
		if want, err = model.ParseMessageType(t); err != nil {
			writeProblem(c, http.StatusBadRequest, "UNKNOWN_MESSAGE_TYPE", err.Error())
			return
		}
	}

	m, warnings, err := s.codec.DecodeType(b, want)
	if err != nil {
		log.Infof("Decode %d bytes failed: %v", len(b), err)
		writeProblem(c, http.StatusBadRequest, strings.ToUpper(codec.ErrorKind(err)), err.Error())
		return
	}
	log.Debugf("Decoded %s with %d warnings", m.MessageType(), len(warnings))
	c.JSON(http.StatusOK, DecodeResponse{
		MessageType: m.MessageType().String(),
		Message:     m,
		Warnings:    warnings,
	})
}

func (s *Server) HTTPEncode(c *gin.Context) {
	log := requestLog(c)

	var req EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeProblem(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	mt, err := model.ParseMessageType(req.MessageType)
	if err != nil {
		writeProblem(c, http.StatusBadRequest, "UNKNOWN_MESSAGE_TYPE", err.Error())
		return
	}
	m, err := model.NewMessage(mt)
	if err != nil {
		writeProblem(c, http.StatusBadRequest, "UNKNOWN_MESSAGE_TYPE", err.Error())
		return
	}
	if err = json.Unmarshal(req.Message, m); err != nil {
		writeProblem(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	b, err := s.codec.Encode(m)
	if err != nil {
		log.Infof("Encode %s failed: %v", mt, err)
		writeProblem(c, http.StatusBadRequest, strings.ToUpper(codec.ErrorKind(err)), err.Error())
		return
	}
	c.JSON(http.StatusOK, EncodeResponse{
		MessageType: mt.String(),
		Hex:         hex.EncodeToString(b),
		Length:      len(b),
	})
}

// DecodeHex accepts whitespace, colons and an optional 0x prefix, which is
// how Wireshark and most logs print payloads.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\r' || r == '\t' || r == ':'
	}), "")
	if s == "" {
		return nil, errors.New("empty payload")
	}
	return hex.DecodeString(s)
}
