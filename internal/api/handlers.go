package api

import (
	"bytes"
	"image"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"golang.org/x/image/font/opentype"

	"github.com/youruser/cardsheet/internal/cards"
	imagepkg "github.com/youruser/cardsheet/internal/image"
)

// Handler renders single-card previews with a fixed sheet config.
type Handler struct {
	cfg  imagepkg.SheetConfig
	font *opentype.Font
}

func NewHandler(cfg imagepkg.SheetConfig, f *opentype.Font) *Handler {
	return &Handler{cfg: cfg, font: f}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type cardRequest struct {
	Text   string `json:"text" binding:"required"`
	Type   string `json:"type"`
	Footer *bool  `json:"footer"`
}

// card renders one sheet cell. Type defaults to white; the footer is on
// unless explicitly disabled.
func (h *Handler) card(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := cards.Light
	if req.Type != "" {
		var err error
		if t, err = cards.ParseCardType(req.Type); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	cfg := h.cfg
	cfg.Rows, cfg.Columns, cfg.Margin = 1, 1, 0
	if req.Footer != nil && !*req.Footer {
		cfg.Title = ""
	}
	img, err := imagepkg.ComposeSheet(t, []string{req.Text}, cfg, h.font)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, img)
}

func (h *Handler) cardback(c *gin.Context) {
	t, err := cards.ParseCardType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	img, err := imagepkg.RenderCardback(t, h.cfg, h.font)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, img)
}

// writePNG encodes img, scaled down to the "width" query param if given.
func writePNG(c *gin.Context, img image.Image) {
	if s := c.Query("width"); s != "" {
		w, err := strconv.Atoi(s)
		if err != nil || w <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "width must be a positive integer"})
			return
		}
		img = imaging.Resize(img, w, 0, imaging.Lanczos)
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
