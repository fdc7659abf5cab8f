package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/metrics"
	"github.com/potatolake/internal/objectstore"
	"github.com/potatolake/internal/upload"
)

// multipart framing on top of the largest allowed file
const uploadOverhead = 1 << 20

// Upload 处理后台文件上传：校验类型与大小，生成唯一文件名后写入对象存储。
func (a *API) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, upload.MaxFileSize+uploadOverhead)

	if err := c.Request.ParseMultipartForm(upload.MaxImageSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.rejectUpload(c, "", "file too large")
			return
		}
		a.rejectUpload(c, "", "multipart form with a file is required")
		return
	}

	category, err := upload.ParseCategory(c.PostForm("type"))
	if err != nil {
		a.rejectUpload(c, "", err.Error())
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		a.rejectUpload(c, category, "file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		metrics.RecordUpload(string(category), "error", 0)
		respondInternal(c, err, "open uploaded file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if strings.TrimSpace(contentType) == "" || upload.NormalizeType(contentType) == "application/octet-stream" {
		sniff := make([]byte, 512)
		n, _ := io.ReadFull(file, sniff)
		contentType = http.DetectContentType(sniff[:n])
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			respondInternal(c, err, "rewind uploaded file")
			return
		}
	}
	contentType = upload.NormalizeType(contentType)

	if err := upload.Validate(category, contentType, header.Size); err != nil {
		a.rejectUpload(c, category, err.Error())
		return
	}

	response := gin.H{
		"size": header.Size,
		"type": contentType,
	}
	if width, height, ok := upload.ImageSize(file); ok {
		response["width"] = width
		response["height"] = height
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondInternal(c, err, "rewind uploaded file")
		return
	}

	name := upload.GenerateName(a.now(), header.Filename, contentType)
	url, err := a.store.Put(c.Request.Context(), name, contentType, file, header.Size)
	if err != nil {
		metrics.RecordUpload(string(category), "error", 0)
		if errors.Is(err, objectstore.ErrUnavailable) {
			logging.Warn().Err(err).Str("filename", name).Msg("object store unavailable")
			respondError(c, http.StatusServiceUnavailable, "file storage is temporarily unavailable")
			return
		}
		respondInternal(c, err, "store upload")
		return
	}

	metrics.RecordUpload(string(category), "ok", header.Size)
	logging.Info().Str("filename", name).Str("type", contentType).Int64("size", header.Size).Msg("file uploaded")

	response["url"] = url
	response["filename"] = name
	c.JSON(http.StatusOK, response)
}

func (a *API) rejectUpload(c *gin.Context, category upload.Category, message string) {
	label := string(category)
	if label == "" {
		label = "unknown"
	}
	metrics.RecordUpload(label, "rejected", 0)
	respondError(c, http.StatusBadRequest, message)
}
