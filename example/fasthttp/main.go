package main

import (
	"os"
	"time"

	"github.com/lixenwraith/taglog"
	"github.com/lixenwraith/taglog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	logger, err := taglog.NewBuilder().
		Level(taglog.LevelInfo).
		TagPrefix("WEB").
		Output(taglog.WriterSink(os.Stderr)).
		Build()
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with default level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(taglog.LevelInfo),
	)

	httpLog := logger.Tag("HTTP")
	requestHandler := func(ctx *fasthttp.RequestCtx) {
		httpLog.Infof("%s %s", ctx.Method(), ctx.Path())
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok\n")
	}

	server := &fasthttp.Server{
		Handler:      requestHandler,
		Logger:       fasthttpAdapter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	logger.Infof("listening on %s", ":8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
