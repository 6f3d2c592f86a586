package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"warehouseapi/internal/config"
)

// azureStorage implements Storage on Azure Blob Storage with a service principal.
type azureStorage struct {
	client           *azblob.Client
	defaultContainer string
}

// NewAzureBlob creates a blob client for https://<account>.blob.core.windows.net.
func NewAzureBlob(cfg config.AzureConfig) (Storage, error) {
	if cfg.AccountName == "" {
		return nil, fmt.Errorf("azure storage account name is required")
	}
	if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("azure service principal credentials are required")
	}

	cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("create azure credential: %w", err)
	}

	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", cfg.AccountName)
	cli, err := azblob.NewClient(serviceURL, cred, &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Transport: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create azure blob client: %w", err)
	}
	return &azureStorage{client: cli, defaultContainer: cfg.Container}, nil
}

func (a *azureStorage) container(name string) string {
	if name == "" {
		return a.defaultContainer
	}
	return name
}

// List pages through the flat blob listing under prefix.
func (a *azureStorage) List(ctx context.Context, container, prefix string) ([]ObjectInfo, error) {
	pager := a.client.NewListBlobsFlatPager(a.container(container), &azblob.ListBlobsFlatOptions{Prefix: &prefix})

	var out []ObjectInfo
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}
			info := ObjectInfo{Key: *item.Name}
			if p := item.Properties; p != nil {
				if p.ContentLength != nil {
					info.Size = *p.ContentLength
				}
				if p.ContentType != nil {
					info.ContentType = *p.ContentType
				}
				if p.LastModified != nil {
					info.LastModified = *p.LastModified
				}
			}
			out = append(out, info)
		}
	}
	return out, nil
}

// Get streams a blob's content.
func (a *azureStorage) Get(ctx context.Context, container, key string) (io.ReadCloser, ObjectInfo, error) {
	resp, err := a.client.DownloadStream(ctx, a.container(container), key, nil)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{Key: key}
	if resp.ContentLength != nil {
		info.Size = *resp.ContentLength
	}
	if resp.ContentType != nil {
		info.ContentType = *resp.ContentType
	}
	if resp.LastModified != nil {
		info.LastModified = *resp.LastModified
	}
	return resp.Body, info, nil
}
