// Package mcp provides an MCP (Model Context Protocol) server for
// syntaxpresso. It exposes the read-only project queries as MCP tools
// so AI agents can inspect a Java project without shelling out to the
// CLI.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/syntaxpresso/core/internal/cache"
	"github.com/syntaxpresso/core/internal/config"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/scan"
)

// Server wraps the MCP server with project-aware tools.
type Server struct {
	mcpServer    *server.MCPServer
	scanner      *scan.Scanner
	store        *cache.Cache
	projectRoot  string
	lastActivity time.Time
	timeout      time.Duration
	mu           sync.RWMutex
}

// Config holds server configuration.
type Config struct {
	ProjectRoot string
	Timeout     time.Duration // Inactivity timeout (0 = no timeout)
}

// New creates an MCP server rooted at the given project directory.
func New(cfg Config) (*Server, error) {
	root := cfg.ProjectRoot
	if root == "" {
		root = "."
	}

	projCfg, err := config.Load(root)
	if err != nil {
		projCfg = config.DefaultConfig()
	}

	scanner := &scan.Scanner{
		Workers:  projCfg.Scan.Workers,
		Excludes: projCfg.Scan.Exclude,
	}

	var store *cache.Cache
	if !projCfg.Scan.DisableCache {
		if dir, err := config.FindConfigDir(root); err == nil {
			if c, err := cache.Open(dir); err == nil {
				store = c
				scanner.Store = c
			}
		}
	}

	mcpServer := server.NewMCPServer(
		"syntaxpresso",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer:    mcpServer,
		scanner:      scanner,
		store:        store,
		projectRoot:  root,
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
	}
	s.registerTools()
	return s, nil
}

// ServeStdio starts the server using stdio transport.
func (s *Server) ServeStdio() error {
	if s.timeout > 0 {
		go s.timeoutChecker()
	}
	return server.ServeStdio(s.mcpServer)
}

// timeoutChecker exits the process after prolonged inactivity.
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		elapsed := time.Since(s.lastActivity)
		s.mu.RUnlock()

		if elapsed > s.timeout {
			fmt.Fprintf(os.Stderr, "syntaxpresso serve-mcp: timeout after %v of inactivity\n", s.timeout)
			os.Exit(0)
		}
	}
}

func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// Close releases the classification cache, if open.
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("java_entities",
		mcp.WithDescription("List every JPA entity in the project."),
	), s.handleEntities)

	s.mcpServer.AddTool(mcp.NewTool("java_mapped_superclasses",
		mcp.WithDescription("List every JPA mapped superclass in the project."),
	), s.handleSuperclasses)

	s.mcpServer.AddTool(mcp.NewTool("java_packages",
		mcp.WithDescription("List the packages declared under a source set."),
		mcp.WithString("source_directory",
			mcp.Description("Source set to inspect: main or test (default: main)"),
		),
	), s.handlePackages)

	s.mcpServer.AddTool(mcp.NewTool("java_entity_info",
		mcp.WithDescription("Describe a JPA entity: package, superclass, id field and declared fields."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the entity file"),
		),
	), s.handleEntityInfo)

	s.mcpServer.AddTool(mcp.NewTool("java_basic_types",
		mcp.WithDescription("List well-known Java field types usable in entities."),
		mcp.WithString("kind",
			mcp.Description("Catalog slice: all-types, id-types, numeric-types, temporal-types, text-types, binary-types (default: all-types)"),
		),
	), s.handleBasicTypes)
}

// Tool handlers

func (s *Server) handleEntities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.classifiedTypes(ctx, scan.KindEntity)
}

func (s *Server) handleSuperclasses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.classifiedTypes(ctx, scan.KindMappedSuperclass)
}

func (s *Server) classifiedTypes(ctx context.Context, kind scan.Kind) (*mcp.CallToolResult, error) {
	s.updateActivity()

	descs, err := s.scanner.Scan(ctx, s.projectRoot)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	matched := scan.Filter(descs, kind)
	types := make([]map[string]any, 0, len(matched))
	for _, d := range matched {
		types = append(types, map[string]any{
			"packageName": d.Package,
			"typeName":    d.Name,
			"filePath":    d.Path,
		})
	}
	return jsonResult(map[string]any{
		"types":      types,
		"typesCount": len(types),
	})
}

func (s *Server) handlePackages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	dirArg, _ := args["source_directory"].(string)
	if dirArg == "" {
		dirArg = "main"
	}
	dir, err := jpa.ParseSourceDir(dirArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	root := filepath.Join(s.projectRoot, filepath.FromSlash(dir.Path()))
	descs, err := s.scanner.Scan(ctx, root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	packages := scan.Packages(descs)
	return jsonResult(map[string]any{
		"packages":        packages,
		"packagesCount":   len(packages),
		"rootPackageName": scan.RootPackage(packages),
	})
}

func (s *Server) handleEntityInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	path, ok := args["file_path"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := scan.DescribeEntity(source)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields := make([]map[string]any, 0, len(info.Fields))
	for _, f := range info.Fields {
		fields = append(fields, map[string]any{
			"fieldName": f.Name,
			"fieldType": f.Type,
		})
	}
	result := map[string]any{
		"packageName": info.Package,
		"typeName":    info.Name,
		"fields":      fields,
	}
	if info.Superclass != "" {
		result["superclassName"] = info.Superclass
	}
	if info.ID != nil {
		result["idField"] = map[string]any{
			"fieldName": info.ID.Name,
			"fieldType": info.ID.Type,
		}
	}
	return jsonResult(result)
}

func (s *Server) handleBasicTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	kindArg, _ := args["kind"].(string)
	if kindArg == "" {
		kindArg = "all-types"
	}
	kind, err := jpa.ParseBasicTypeQuery(kindArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	types := jpa.BasicTypes(kind)
	result := make([]map[string]any, 0, len(types))
	for _, t := range types {
		result = append(result, map[string]any{
			"typeName":           t.TypeName,
			"fullyQualifiedName": t.FullyQualifiedName(),
			"isPrimitive":        t.IsPrimitive(),
		})
	}
	return jsonResult(result)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
