package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/voxjson/voxjson/pkg/assets"
	"github.com/voxjson/voxjson/pkg/cli"
)

var (
	fetchFrom     string
	fetchRegion   string
	fetchEndpoint string
)

var fetchProfileCmd = &cobra.Command{
	Use:   "fetch-profile <name>...",
	Short: "Download missing profile assets from a store",
	Long: `Download the named assets into the profile directory.

The source is either a local directory or an s3://bucket[/prefix] URL.
Assets already present in the profile are left untouched. S3 sources use
anonymous credentials unless AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY
are set; --endpoint points at S3-compatible stores such as MinIO.

Examples:
  voxjson fetch-profile --from /mnt/share/profiles/en-us base_dictionary.txt
  voxjson fetch-profile --from s3://voxjson-assets/en-us base_dictionary.txt base_language_model.txt
  voxjson fetch-profile --from s3://assets --endpoint http://localhost:9000 g2p.fst`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		src, err := openStore(fetchFrom)
		if err != nil {
			return err
		}

		res, err := assets.Sync(cmd.Context(), p.Dir, src, args)
		if err != nil {
			return err
		}
		for _, name := range res.Skipped {
			cli.PrintInfo("already present: %s", name)
		}
		cli.PrintSuccess("fetched %d asset(s), %s", len(res.Fetched), cli.FormatBytes(res.Bytes))
		return nil
	},
}

// openStore builds an asset store from a --from value: an s3://bucket/prefix
// URL or a local directory path.
func openStore(from string) (assets.Store, error) {
	if from == "" {
		return nil, fmt.Errorf("--from is required")
	}

	if rest, ok := strings.CutPrefix(from, "s3://"); ok {
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, fmt.Errorf("invalid S3 URL %q (want s3://bucket[/prefix])", from)
		}
		client := s3.New(s3.Options{
			Region:       fetchRegion,
			BaseEndpoint: baseEndpoint(),
			Credentials:  envCredentials(),
			UsePathStyle: fetchEndpoint != "",
		})
		return assets.NewS3(client, bucket, prefix), nil
	}

	return assets.NewDir(from)
}

func baseEndpoint() *string {
	if fetchEndpoint == "" {
		return nil
	}
	return aws.String(fetchEndpoint)
}

// envCredentials reads static credentials from the environment, falling back
// to anonymous access for public asset buckets.
func envCredentials() aws.CredentialsProvider {
	key := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if key == "" || secret == "" {
		return aws.AnonymousCredentials{}
	}
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     key,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		}, nil
	})
}

func init() {
	fetchProfileCmd.Flags().StringVar(&fetchFrom, "from", "", "asset source: directory or s3://bucket[/prefix]")
	fetchProfileCmd.Flags().StringVar(&fetchRegion, "region", "us-east-1", "S3 region")
	fetchProfileCmd.Flags().StringVar(&fetchEndpoint, "endpoint", "", "S3-compatible endpoint URL")
	fetchProfileCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(fetchProfileCmd)
}
