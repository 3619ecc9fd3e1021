// Package server wires the content pipeline into MCP tools.
package server

import (
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_repurpose/internal/engine/content"
	"github.com/anatolykoptev/go_repurpose/internal/engine/sources"
)

// pipe is the shared pipeline instance, set once from main before the MCP
// server starts serving.
var pipe *content.Pipeline

// RegisterTools registers every content tool on the given MCP server.
func RegisterTools(server *mcp.Server, p *content.Pipeline) {
	pipe = p

	registerContentGenerate(server)
	registerViralHooks(server)
	registerContentEnhance(server)
	registerVideoTranscript(server)
	registerVideoMetadata(server)
	registerTopicPulse(server)
	registerGenerationHistory(server)
}

// resolveVideoID accepts either a URL or a bare id and returns the video id.
func resolveVideoID(rawURL, videoID string) (string, error) {
	if videoID != "" {
		if !sources.IsVideoID(videoID) {
			return "", errors.New("video_id must be 11 characters of [a-zA-Z0-9_-]")
		}
		return videoID, nil
	}
	if rawURL == "" {
		return "", errors.New("url or video_id is required")
	}
	id, ok := sources.ExtractVideoID(rawURL)
	if !ok {
		return "", errors.New("could not extract a video id from url")
	}
	return id, nil
}
