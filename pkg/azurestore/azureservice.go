package azurestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/tus/rangeserve/pkg/handler"
)

type azService struct {
	ContainerClient *container.Client
	ContainerName   string
}

type AzService interface {
	NewBlob(ctx context.Context, name string) (AzBlob, error)
}

type AzConfig struct {
	// AccountName is the name of the storage account.
	AccountName string
	// AccountKey is the shared key of the storage account. If it is empty,
	// the default Azure credential chain (environment, workload identity,
	// managed identity, Azure CLI) is used instead.
	AccountKey    string
	ContainerName string
	// Endpoint is the blob service URL, e.g. https://<account>.blob.core.windows.net
	Endpoint string
}

// BlobProperties contains the attributes of a blob which are relevant for
// serving it.
type BlobProperties struct {
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

type AzBlob interface {
	// GetProperties returns the size, type and meta data of the blob
	GetProperties(ctx context.Context) (BlobProperties, error)
	// DownloadRange returns a readcloser for count bytes of the blob starting
	// at offset. A count of zero or less reads until the end of the blob.
	DownloadRange(ctx context.Context, offset, count int64) (io.ReadCloser, error)
}

type BlockBlob struct {
	BlobClient *blob.Client
}

// New Azure service for communication to Azure Blob Storage API
func NewAzureService(config *AzConfig) (AzService, error) {
	serviceURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(config.Endpoint, "/"), config.ContainerName)
	retryOpts := policy.RetryOptions{
		MaxRetries:    5,
		RetryDelay:    100 * time.Millisecond,
		MaxRetryDelay: 5 * time.Second,
	}
	options := &container.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: retryOpts,
		},
	}

	var containerClient *container.Client
	if config.AccountKey != "" {
		cred, err := azblob.NewSharedKeyCredential(config.AccountName, config.AccountKey)
		if err != nil {
			return nil, err
		}

		containerClient, err = container.NewClientWithSharedKeyCredential(serviceURL, cred, options)
		if err != nil {
			return nil, err
		}
	} else {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, err
		}

		containerClient, err = container.NewClient(serviceURL, cred, options)
		if err != nil {
			return nil, err
		}
	}

	return &azService{
		ContainerClient: containerClient,
		ContainerName:   config.ContainerName,
	}, nil
}

func (service *azService) NewBlob(ctx context.Context, name string) (AzBlob, error) {
	return &BlockBlob{
		BlobClient: service.ContainerClient.NewBlobClient(name),
	}, nil
}

// GetProperties fetches the properties of the blob from Azure Blob Storage
func (blockBlob *BlockBlob) GetProperties(ctx context.Context) (BlobProperties, error) {
	resp, err := blockBlob.BlobClient.GetProperties(ctx, nil)
	if err != nil {
		return BlobProperties{}, checkForNotFoundError(err)
	}

	props := BlobProperties{
		Metadata: make(map[string]string, len(resp.Metadata)),
	}
	if resp.ContentLength != nil {
		props.Size = *resp.ContentLength
	}
	if resp.ContentType != nil {
		props.ContentType = *resp.ContentType
	}
	if resp.LastModified != nil {
		props.LastModified = *resp.LastModified
	}
	for key, value := range resp.Metadata {
		if value != nil {
			props.Metadata[strings.ToLower(key)] = *value
		}
	}

	return props, nil
}

// DownloadRange downloads a window of the blob from Azure Blob Storage
func (blockBlob *BlockBlob) DownloadRange(ctx context.Context, offset, count int64) (io.ReadCloser, error) {
	// A count of zero makes the service return everything after offset.
	if count < 0 {
		count = 0
	}

	resp, err := blockBlob.BlobClient.DownloadStream(ctx, &blob.DownloadStreamOptions{
		Range: blob.HTTPRange{
			Offset: offset,
			Count:  count,
		},
	})
	if err != nil {
		return nil, checkForNotFoundError(err)
	}
	return resp.Body, nil
}

// checkForNotFoundError checks if the error indicates that a resource was not found.
// If so, we return the corresponding handler error.
func checkForNotFoundError(err error) error {
	var azureError *azcore.ResponseError
	if errors.As(err, &azureError) {
		code := bloberror.Code(azureError.ErrorCode)
		if code == bloberror.BlobNotFound || code == bloberror.ContainerNotFound || azureError.StatusCode == http.StatusNotFound {
			return handler.ErrNotFound
		}
	}
	return err
}
