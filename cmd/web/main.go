package main

import (
	"fmt"
	"io"
	"os"

	"dungeon-lens/pkg/parser"
	"dungeon-lens/pkg/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// maxUpload bounds the request body; dtextc.dat variants are well under
// a megabyte.
const maxUpload = 8 << 20

func main() {
	// Get port from environment or default to 3000
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// Decode a data file posted as the raw request body
	r.POST("/api/decode", handleDecode)

	r.GET("/", func(c *gin.Context) {
		c.Data(200, "text/html", []byte(fallbackHTML))
	})

	fmt.Printf("http://127.0.0.1:%s\n", port)
	r.Run(":" + port)
}

func handleDecode(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUpload))
	if err != nil {
		c.JSON(400, types.DecodeOutput{
			OK:    false,
			Error: &types.ErrorInfo{Code: "INVALID_REQUEST", Message: "Failed to read request body"},
		})
		return
	}

	if len(body) == 0 {
		c.JSON(400, types.DecodeOutput{
			OK:    false,
			Error: &types.ErrorInfo{Code: "EMPTY_BODY", Message: "Request body is empty"},
		})
		return
	}

	result := parser.Decode(body)
	c.JSON(200, parser.Output(result, ""))
}

const fallbackHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Dungeon Lens - dtextc.dat Decoder</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #5b8a3c; }
        button { background: #5b8a3c; color: white; padding: 10px 20px; border: none; cursor: pointer; }
        pre { background: #f5f5f5; padding: 15px; overflow-x: auto; white-space: pre-wrap; }
    </style>
</head>
<body>
    <h1>&#128737; Dungeon Lens</h1>
    <p>Select a dtextc.dat file to decode its encrypted text section:</p>
    <input type="file" id="input">
    <br><br>
    <button onclick="decode()">Decode</button>
    <h2>Result:</h2>
    <pre id="output">Results will appear here...</pre>

    <script>
        async function decode() {
            const files = document.getElementById('input').files;
            const output = document.getElementById('output');
            if (!files.length) {
                output.textContent = 'Pick a file first.';
                return;
            }
            try {
                const body = await files[0].arrayBuffer();
                const resp = await fetch('/api/decode', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/octet-stream' },
                    body: body
                });
                const result = await resp.json();
                output.textContent = JSON.stringify(result, null, 2);
            } catch (e) {
                output.textContent = 'Error: ' + e.message;
            }
        }
    </script>
</body>
</html>`
