package chat

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// ImagePart lê uma imagem local e devolve uma parte inline com o media type
// detectado pela extensão ou pelo conteúdo.
func ImagePart(path string) (*genai.Part, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	mediaType := MediaType(path, data)
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%s is not an image (%s)", path, mediaType)
	}
	return genai.NewPartFromBytes(data, mediaType), nil
}

// MediaType resolve o tipo pelo sufixo do arquivo e, na falta dele, pelos
// primeiros bytes.
func MediaType(path string, data []byte) string {
	if ext := filepath.Ext(path); ext != "" {
		if t := mime.TypeByExtension(strings.ToLower(ext)); t != "" {
			if i := strings.IndexByte(t, ';'); i >= 0 {
				t = t[:i]
			}
			return t
		}
	}
	return http.DetectContentType(data)
}
