package middleware

import (
    "compress/gzip"
    "net/http"
    "strings"
)

// CompressHandler gzips responses for clients that accept it.
func CompressHandler(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
            next.ServeHTTP(w, r)
            return
        }

        w.Header().Set("Content-Encoding", "gzip")
        w.Header().Add("Vary", "Accept-Encoding")

        gz := gzip.NewWriter(w)
        defer gz.Close()

        next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, writer: gz}, r)
    })
}

type gzipResponseWriter struct {
    http.ResponseWriter
    writer *gzip.Writer
}

func (gw *gzipResponseWriter) Write(data []byte) (int, error) {
    // Content-Length would describe the uncompressed body; drop it
    gw.Header().Del("Content-Length")
    return gw.writer.Write(data)
}
