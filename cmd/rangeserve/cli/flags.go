package cli

import (
	"flag"
	"time"

	"github.com/tus/rangeserve/internal/grouped_flags"
)

var Flags struct {
	HttpHost               string
	HttpPort               string
	HttpSock               string
	EnableH2C              bool
	Basepath               string
	ShowGreeting           bool
	DisableRanges          bool
	Dir                    string
	NetworkTimeout         time.Duration
	ShutdownTimeout        time.Duration
	S3Bucket               string
	S3ObjectPrefix         string
	S3Endpoint             string
	S3TransferAcceleration bool
	S3LogAPICalls          bool
	GCSBucket              string
	GCSObjectPrefix        string
	AzContainer            string
	AzObjectPrefix         string
	AzEndpoint             string
	OriginURL              string
	OriginAuthorization    string
	OriginRetry            int
	OriginBackoff          time.Duration
	OriginMaxRequests      int64
	ShowVersion            bool
	ExposeMetrics          bool
	MetricsPath            string
	ExposePprof            bool
	PprofPath              string
	PprofBlockProfileRate  int
	PprofMutexProfileRate  int
	VerboseOutput          bool
	ShowStartupLogs        bool
	LogFormat              string
	TLSCertFile            string
	TLSKeyFile             string
	TLSMode                string
}

func ParseFlags() {
	fs := grouped_flags.NewFlagGroupSet(flag.ExitOnError)
	fs.SetEnvPrefix("RANGESERVE")

	fs.AddGroup("Listening options", func(f *flag.FlagSet) {
		f.StringVar(&Flags.HttpHost, "host", "0.0.0.0", "Host to bind HTTP server to")
		f.StringVar(&Flags.HttpPort, "port", "8080", "Port to bind HTTP server to")
		f.StringVar(&Flags.HttpSock, "unix-sock", "", "If set, will listen to a UNIX socket at this location instead of a TCP socket")
		f.StringVar(&Flags.Basepath, "base-path", "/files/", "Basepath of the HTTP server")
		f.BoolVar(&Flags.EnableH2C, "enable-h2c", false, "Allow for HTTP/2 cleartext (h2c) connections (non-encrypted)")
	})

	fs.AddGroup("TLS options", func(f *flag.FlagSet) {
		f.StringVar(&Flags.TLSCertFile, "tls-certificate", "", "Path to the file containing the x509 TLS certificate to be used. The file should also contain any intermediate certificates and the CA certificate.")
		f.StringVar(&Flags.TLSKeyFile, "tls-key", "", "Path to the file containing the key for the TLS certificate.")
		f.StringVar(&Flags.TLSMode, "tls-mode", "tls12", "Specify which TLS mode to use; valid modes are tls13, tls12, and tls12-strong.")
	})

	fs.AddGroup("Download options", func(f *flag.FlagSet) {
		f.BoolVar(&Flags.DisableRanges, "disable-ranges", false, "Ignore Range headers and always respond with the entire resource")
	})

	fs.AddGroup("File storage options", func(f *flag.FlagSet) {
		f.StringVar(&Flags.Dir, "dir", "./data", "Directory to serve resources from")
	})

	fs.AddGroup("AWS S3 storage options", func(f *flag.FlagSet) {
		f.StringVar(&Flags.S3Bucket, "s3-bucket", "", "Use AWS S3 with this bucket as storage backend (requires the AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_REGION environment variables to be set)")
		f.StringVar(&Flags.S3ObjectPrefix, "s3-object-prefix", "", "Prefix for S3 object names")
		f.StringVar(&Flags.S3Endpoint, "s3-endpoint", "", "Endpoint to use S3 compatible implementations like minio (requires s3-bucket to be pass)")
		f.BoolVar(&Flags.S3TransferAcceleration, "s3-transfer-acceleration", false, "Use AWS S3 transfer acceleration endpoint (requires -s3-bucket option and Transfer Acceleration property on S3 bucket to be set)")
		f.BoolVar(&Flags.S3LogAPICalls, "s3-log-api-calls", false, "Log all calls to the S3 API including their input and output")
	})

	fs.AddGroup("Google Cloud Storage options", func(f *flag.FlagSet) {
		f.StringVar(&Flags.GCSBucket, "gcs-bucket", "", "Use Google Cloud Storage with this bucket as storage backend (uses the GCS_SERVICE_ACCOUNT_FILE environment variable if set, else the default credentials)")
		f.StringVar(&Flags.GCSObjectPrefix, "gcs-object-prefix", "", "Prefix for GCS object names")
	})

	fs.AddGroup("Azure Storage options", func(f *flag.FlagSet) {
		f.StringVar(&Flags.AzContainer, "azure-storage", "", "Use Azure BlockBlob Storage with this container name as a storage backend (requires the AZURE_STORAGE_ACCOUNT environment variable to be set, AZURE_STORAGE_KEY is optional)")
		f.StringVar(&Flags.AzObjectPrefix, "azure-object-prefix", "", "Prefix for Azure object names")
		f.StringVar(&Flags.AzEndpoint, "azure-endpoint", "", "Custom Endpoint to use for Azure BlockBlob Storage (requires azure-storage to be pass)")
	})

	fs.AddGroup("HTTP origin options", func(f *flag.FlagSet) {
		f.StringVar(&Flags.OriginURL, "origin-url", "", "Serve resources from another HTTP server at this base URL")
		f.StringVar(&Flags.OriginAuthorization, "origin-authorization", "", "Value of the Authorization header sent to the origin")
		f.IntVar(&Flags.OriginRetry, "origin-retry", 3, "Number of times to retry on a 5xx response or network error")
		f.DurationVar(&Flags.OriginBackoff, "origin-backoff", 1*time.Second, "Wait period before retrying each retry")
		f.Int64Var(&Flags.OriginMaxRequests, "origin-max-concurrent-requests", 0, "Maximum number of concurrent requests to the origin. Zero means no limit.")
	})

	fs.AddGroup("Monitoring, profiling, logging options", func(f *flag.FlagSet) {
		f.BoolVar(&Flags.ExposeMetrics, "expose-metrics", true, "Expose metrics about rangeserve usage")
		f.StringVar(&Flags.MetricsPath, "metrics-path", "/metrics", "Path under which the metrics endpoint will be accessible")
		f.BoolVar(&Flags.ExposePprof, "expose-pprof", false, "Expose the pprof interface over HTTP for profiling rangeserve")
		f.StringVar(&Flags.PprofPath, "pprof-path", "/debug/pprof/", "Path under which the pprof endpoint will be accessible")
		f.IntVar(&Flags.PprofBlockProfileRate, "pprof-block-profile-rate", 0, "Fraction of goroutine blocking events that are reported in the blocking profile")
		f.IntVar(&Flags.PprofMutexProfileRate, "pprof-mutex-profile-rate", 0, "Fraction of mutex contention events that are reported in the mutex profile")
		f.BoolVar(&Flags.ShowGreeting, "show-greeting", true, "Show the greeting message for GET requests to the root path")
		f.BoolVar(&Flags.ShowVersion, "version", false, "Print rangeserve version information")
		f.BoolVar(&Flags.VerboseOutput, "verbose", true, "Enable verbose logging output")
		f.BoolVar(&Flags.ShowStartupLogs, "show-startup-logs", true, "Print details about rangeserve's configuration during startup")
		f.StringVar(&Flags.LogFormat, "log-format", "text", "Logging format (text or json)")
	})

	fs.AddGroup("Timeout options", func(f *flag.FlagSet) {
		f.DurationVar(&Flags.NetworkTimeout, "network-timeout", 60*time.Second, "Timeout for reading the request and writing the response. If rangeserve does not receive or send data for this duration, it will consider the connection dead.")
		f.DurationVar(&Flags.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "Timeout for closing connections gracefully during shutdown. After the timeout, rangeserve will exit regardless of any open connection.")
	})

	if err := fs.Parse(); err != nil {
		stderr.Fatalf("Unable to parse flags: %s", err)
	}

	SetupStructuredLogger()
}
