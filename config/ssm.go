package config

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// OverlaySSMParameters merges secrets stored under an AWS SSM Parameter
// Store prefix (e.g. "/site-backend/prod/") into the config map, with
// decryption enabled. Keys are derived from the last path segment,
// upper-cased with hyphens mapped to underscores, so
// "/site-backend/prod/resend-api-key" becomes RESEND_API_KEY.
// Values already present in the environment win over SSM.
func OverlaySSMParameters(ctx context.Context, cfg map[string]string, prefix string) error {
	if prefix == "" {
		return nil
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)
	recursive := true
	decrypt := true

	var nextToken *string
	for {
		out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
			Path:           &prefix,
			Recursive:      &recursive,
			WithDecryption: &decrypt,
			NextToken:      nextToken,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch SSM parameters under %s: %w", prefix, err)
		}

		for _, param := range out.Parameters {
			if param.Name == nil || param.Value == nil {
				continue
			}
			key := ssmNameToEnvKey(*param.Name)
			if key == "" {
				continue
			}
			if _, exists := cfg[key]; !exists {
				cfg[key] = *param.Value
			}
		}

		if out.NextToken == nil {
			return nil
		}
		nextToken = out.NextToken
	}
}

func ssmNameToEnvKey(name string) string {
	idx := strings.LastIndex(name, "/")
	if idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
