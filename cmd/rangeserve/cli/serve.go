package cli

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tus/rangeserve/pkg/handler"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const (
	TLS13       = "tls13"
	TLS12       = "tls12"
	TLS12STRONG = "tls12-strong"
)

// Serve sets up the HTTP handler for the selected store and starts
// listening. It returns once the server has been shut down gracefully.
func Serve() {
	config := handler.Config{
		Store:                Store,
		BasePath:             Flags.Basepath,
		DisableRangeRequests: Flags.DisableRanges,
		Logger:               Logger,
	}

	h, err := handler.NewHandler(config)
	if err != nil {
		stderr.Fatalf("Unable to create handler: %s", err)
	}

	basepath := Flags.Basepath
	address := ""

	if Flags.HttpSock != "" {
		address = Flags.HttpSock
		printStartupLog("Using socket to listen", "path", address)
	} else {
		address = net.JoinHostPort(Flags.HttpHost, Flags.HttpPort)
		printStartupLog("Using address to listen", "address", address)
	}

	printStartupLog("Using base path", "path", basepath)
	if Flags.DisableRanges {
		printStartupLog("Range requests are disabled")
	}

	mux := newServeMux(h)

	var listener net.Listener
	if Flags.HttpSock != "" {
		listener, err = NewUnixListener(address, Flags.NetworkTimeout, Flags.NetworkTimeout)
	} else {
		listener, err = NewListener(address, Flags.NetworkTimeout, Flags.NetworkTimeout)
	}
	if err != nil {
		stderr.Fatalf("Unable to create listener: %s", err)
	}

	protocol := "http"
	if Flags.TLSCertFile != "" && Flags.TLSKeyFile != "" {
		protocol = "https"
	}

	if Flags.HttpSock == "" {
		printStartupLog("You can now download files", "url", protocol+"://"+listener.Addr().String()+basepath)
	}

	var serverHandler http.Handler = mux
	if Flags.EnableH2C {
		serverHandler = h2c.NewHandler(serverHandler, &http2.Server{})
	}

	server := &http.Server{
		Handler: serverHandler,
	}

	shutdownComplete := setupSignalHandler(server)

	if protocol == "http" {
		// Non-TLS mode
		err = server.Serve(listener)
	} else {
		server.TLSConfig, err = tlsConfig(Flags.TLSMode)
		if err != nil {
			stderr.Fatalf("Invalid TLS configuration: %s", err)
		}
		err = server.ServeTLS(listener, Flags.TLSCertFile, Flags.TLSKeyFile)
	}

	// Note: http.Server.Serve and http.Server.ServeTLS return immediately when the
	// server is shut down. We have to wait until the shutdown is finished.
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownComplete
	} else {
		stderr.Fatalf("Unable to serve: %s", err)
	}
}

func newServeMux(h *handler.Handler) *http.ServeMux {
	basepath := Flags.Basepath
	mux := http.NewServeMux()

	if basepath == "/" {
		// If the base path is the root path, the greeting would collide
		// with the handler, so it is not displayed.
		mux.Handle("/", h)
	} else {
		if Flags.ShowGreeting {
			mux.HandleFunc("/", DisplayGreeting)
		}

		mux.Handle(basepath, http.StripPrefix(basepath, h))
	}

	if Flags.ExposeMetrics {
		SetupMetrics(mux, h)
	}

	if Flags.ExposePprof {
		SetupPprof(mux)
	}

	return mux
}

func tlsConfig(mode string) (*tls.Config, error) {
	config := &tls.Config{}

	switch strings.ToLower(mode) {
	case TLS13:
		config.MinVersion = tls.VersionTLS13
	case TLS12:
		// Use the Go defaults for TLS 1.2 cipher suites.
		config.MinVersion = tls.VersionTLS12
	case TLS12STRONG:
		config.MinVersion = tls.VersionTLS12
		config.CipherSuites = []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		}
	default:
		return nil, errors.New("unknown TLS mode " + mode)
	}

	return config, nil
}

func setupSignalHandler(server *http.Server) <-chan struct{} {
	shutdownComplete := make(chan struct{})

	// We read up to two signals, so use a capacity of 2 here to not miss any signal
	c := make(chan os.Signal, 2)

	// os.Interrupt is mapped to SIGINT on Unix and to the termination instructions on Windows.
	// On Unix we also listen to SIGTERM.
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		Logger.Info("ShutdownStarted", "timeout", Flags.ShutdownTimeout)

		go func() {
			<-c
			Logger.Warn("ShutdownForced")
			os.Exit(1)
		}()

		ctx := context.Background()
		if Flags.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, Flags.ShutdownTimeout)
			defer cancel()
		}

		err := server.Shutdown(ctx)
		if err == nil {
			Logger.Info("ShutdownCompleted")
		} else if errors.Is(err, context.DeadlineExceeded) {
			Logger.Warn("ShutdownTimedOut", "error", err)
		} else {
			Logger.Error("ShutdownFailed", "error", err)
		}

		close(shutdownComplete)
	}()

	return shutdownComplete
}
