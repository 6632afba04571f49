package dynamo

import (
	"testing"

	"github.com/codeShowREX/major-project/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_LocalEndpointOverride(t *testing.T) {
	client, err := NewClient(&config.Config{
		AWSRegion:      "us-east-1",
		AWSEndpointURL: "http://localhost:4566",
		AWSAccessKeyID: "test",
		AWSSecretKey:   "test",
	})
	require.NoError(t, err)
	require.NotNil(t, client)

	opts := client.Options()
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *opts.BaseEndpoint)
	assert.Equal(t, "us-east-1", opts.Region)
}

func TestNewClient_NoOverrideKeepsDefaultEndpoint(t *testing.T) {
	client, err := NewClient(&config.Config{
		AWSRegion:      "eu-west-1",
		AWSAccessKeyID: "test",
		AWSSecretKey:   "test",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Nil(t, client.Options().BaseEndpoint)
}
