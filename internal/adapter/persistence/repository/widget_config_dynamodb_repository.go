package repository

import (
	"context"

	"roofquote/internal/domain/entities"
	"roofquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWidgetConfigsTableName = "widget_configs"

type widgetVariantItem struct {
	Size              float64 `dynamodbav:"size"`
	Price             float64 `dynamodbav:"price"`
	Title             string  `dynamodbav:"title,omitempty"`
	PlatformVariantID string  `dynamodbav:"platform_variant_id,omitempty"`
	ImageURL          string  `dynamodbav:"image_url,omitempty"`
}

type widgetEntryItem struct {
	Handle               string              `dynamodbav:"handle"`
	Role                 string              `dynamodbav:"role"`
	DisplayName          string              `dynamodbav:"display_name,omitempty"`
	CoverageRateOverride *float64            `dynamodbav:"coverage_rate_override,omitempty"`
	Variants             []widgetVariantItem `dynamodbav:"variants"`
}

type widgetConfigItem struct {
	OwnerID     string              `dynamodbav:"owner_id"`
	ShopDomain  string              `dynamodbav:"shop_domain,omitempty"`
	AccessToken string              `dynamodbav:"access_token,omitempty"`
	Currency    string              `dynamodbav:"currency,omitempty"`
	Entries     []widgetEntryItem   `dynamodbav:"entries"`
	Assignments map[string][]string `dynamodbav:"assignments"`
}

// WidgetConfigDynamoRepository reads the operator configuration the
// dashboard maintains: one item per widget owner.
//
// Table requirements:
//   - PK: owner_id (string)

type WidgetConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWidgetConfigProvider = (*WidgetConfigDynamoRepository)(nil)

func NewWidgetConfigDynamoRepository(ddb *dynamodb.Client) *WidgetConfigDynamoRepository {
	return &WidgetConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WIDGET_CONFIGS_TABLE", defaultWidgetConfigsTableName),
	}
}

func (r *WidgetConfigDynamoRepository) GetByOwnerID(ctx context.Context, ownerID string) (entities.WidgetConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WidgetConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.WidgetConfig{}, nil
	}

	var it widgetConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WidgetConfig{}, err
	}
	return fromWidgetConfigItem(it), nil
}

func fromWidgetConfigItem(it widgetConfigItem) entities.WidgetConfig {
	cfg := entities.WidgetConfig{
		OwnerID:     it.OwnerID,
		Connection:  entities.Connection{ShopDomain: it.ShopDomain, AccessToken: it.AccessToken},
		Currency:    it.Currency,
		Assignments: entities.RoleAssignments{},
	}

	for _, e := range it.Entries {
		role, err := entities.ParseRole(e.Role)
		if err != nil {
			// Stale dashboard rows with roles this version does not know
			// are skipped rather than failing the whole config.
			continue
		}
		entry := entities.CatalogEntry{
			Handle:               e.Handle,
			Role:                 role,
			DisplayName:          e.DisplayName,
			CoverageRateOverride: e.CoverageRateOverride,
		}
		for _, v := range e.Variants {
			entry.Variants = append(entry.Variants, entities.Variant{
				Size:              v.Size,
				Price:             v.Price,
				Title:             v.Title,
				PlatformVariantID: v.PlatformVariantID,
				ImageURL:          v.ImageURL,
			})
		}
		cfg.Entries = append(cfg.Entries, entry)
	}

	for roleName, handles := range it.Assignments {
		role, err := entities.ParseRole(roleName)
		if err != nil {
			continue
		}
		cfg.Assignments[role] = handles
	}
	return cfg
}
