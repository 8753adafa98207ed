package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tus/rangeserve/internal/s3log"
	"github.com/tus/rangeserve/pkg/azurestore"
	"github.com/tus/rangeserve/pkg/filestore"
	"github.com/tus/rangeserve/pkg/gcsstore"
	"github.com/tus/rangeserve/pkg/handler"
	"github.com/tus/rangeserve/pkg/httpstore"
	"github.com/tus/rangeserve/pkg/s3store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus"
)

var Store handler.DataStore

// CreateStore selects the storage backend from the flags. The first
// configured of S3, GCS, Azure and an HTTP origin wins, else resources are
// served from the local directory.
func CreateStore() {
	switch {
	case Flags.S3Bucket != "":
		Store = createS3Store()
	case Flags.GCSBucket != "":
		Store = createGCSStore()
	case Flags.AzContainer != "":
		Store = createAzureStore()
	case Flags.OriginURL != "":
		Store = createHTTPStore()
	default:
		Store = createFileStore()
	}
}

func createS3Store() handler.DataStore {
	// Derive credentials from default credential chain (env, shared, ec2 instance role)
	// as per https://docs.aws.amazon.com/sdk-for-go/v2/developer-guide/configure-gosdk.html
	s3Config, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		stderr.Fatalf("Unable to load S3 configuration: %s", err)
	}

	if Flags.S3Endpoint == "" {
		if Flags.S3TransferAcceleration {
			printStartupLog("Using S3 bucket with transfer acceleration", "bucket", Flags.S3Bucket)
		} else {
			printStartupLog("Using S3 bucket", "bucket", Flags.S3Bucket)
		}
	} else {
		printStartupLog("Using S3 endpoint and bucket", "endpoint", Flags.S3Endpoint, "bucket", Flags.S3Bucket)
	}

	var s3Api s3store.S3API = s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.UseAccelerate = Flags.S3TransferAcceleration

		if Flags.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(Flags.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	if Flags.S3LogAPICalls {
		s3Api = s3log.New(s3Api, Logger)
	}

	store := s3store.New(Flags.S3Bucket, s3Api)
	store.ObjectPrefix = Flags.S3ObjectPrefix

	if Flags.ExposeMetrics {
		store.RegisterMetrics(prometheus.DefaultRegisterer)
	}

	return store
}

func createGCSStore() handler.DataStore {
	// Derive credentials from the service account file passed in the
	// GCS_SERVICE_ACCOUNT_FILE environment variable, falling back to the
	// application default credentials.
	gcsSAF := os.Getenv("GCS_SERVICE_ACCOUNT_FILE")

	service, err := gcsstore.NewGCSService(gcsSAF)
	if err != nil {
		stderr.Fatalf("Unable to create Google Cloud Storage service: %s", err)
	}

	printStartupLog("Using GCS bucket", "bucket", Flags.GCSBucket)

	store := gcsstore.New(Flags.GCSBucket, service)
	store.ObjectPrefix = Flags.GCSObjectPrefix

	return store
}

func createAzureStore() handler.DataStore {
	accountName := os.Getenv("AZURE_STORAGE_ACCOUNT")
	if accountName == "" {
		stderr.Fatalf("No service account name for Azure BlockBlob Storage using the AZURE_STORAGE_ACCOUNT environment variable provided")
	}

	azureEndpoint := Flags.AzEndpoint
	// Enables support for using Azurite as a storage emulator without messing with proxies and stuff
	// e.g. http://127.0.0.1:10000/devstoreaccount1
	if azureEndpoint == "" {
		azureEndpoint = fmt.Sprintf("https://%s.blob.core.windows.net", accountName)
	}
	printStartupLog("Using Azure endpoint", "endpoint", azureEndpoint, "container", Flags.AzContainer)

	service, err := azurestore.NewAzureService(&azurestore.AzConfig{
		AccountName:   accountName,
		AccountKey:    os.Getenv("AZURE_STORAGE_KEY"),
		ContainerName: Flags.AzContainer,
		Endpoint:      azureEndpoint,
	})
	if err != nil {
		stderr.Fatalf("Unable to create Azure BlockBlob Storage service: %s", err)
	}

	store := azurestore.New(service)
	store.ObjectPrefix = Flags.AzObjectPrefix

	return store
}

func createHTTPStore() handler.DataStore {
	printStartupLog("Using HTTP origin", "url", Flags.OriginURL, "retry", Flags.OriginRetry, "backoff", Flags.OriginBackoff)

	store := httpstore.New(Flags.OriginURL, Flags.OriginRetry+1, Flags.OriginBackoff)
	store.Logger = Logger
	if Flags.OriginAuthorization != "" {
		store.Header.Set("Authorization", Flags.OriginAuthorization)
	}
	if Flags.OriginMaxRequests > 0 {
		store.LimitConcurrentRequests(Flags.OriginMaxRequests)
	}

	return store
}

func createFileStore() handler.DataStore {
	dir, err := filepath.Abs(Flags.Dir)
	if err != nil {
		stderr.Fatalf("Unable to make absolute path: %s", err)
	}

	printStartupLog("Using local directory", "path", dir)

	root, err := os.OpenRoot(dir)
	if err != nil {
		stderr.Fatalf("Unable to open directory: %s", err)
	}

	return filestore.NewRootStore(root)
}
