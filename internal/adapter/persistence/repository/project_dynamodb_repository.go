package repository

import (
	"context"
	"strconv"
	"time"

	"solari_planner/internal/domain/entities"
	"solari_planner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

const defaultProjectsTableName = "solari_planner_projects"

type projectItem struct {
	ID            string           `dynamodbav:"id"`
	CustomerName  string           `dynamodbav:"customer_name"`
	Province      string           `dynamodbav:"province"`
	SystemSizeKwp string           `dynamodbav:"system_size_kwp"`
	BudgetTier    string           `dynamodbav:"budget_tier"`
	Status        string           `dynamodbav:"status"`
	PlannedCosts  map[string]int64 `dynamodbav:"planned_costs"`
	ActualCosts   map[string]int64 `dynamodbav:"actual_costs,omitempty"`
	Notes         string           `dynamodbav:"notes"`
	CreatedAt     string           `dynamodbav:"created_at"`
	UpdatedAt     string           `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists planner projects in DynamoDB, one item
// per project.
//
// Table requirements:
//   - PK: id (string)
//
// The table name is the persistence namespace; everything the planner owns
// lives under it. LoadAll scans the table and treats items it cannot decode
// as absent, so malformed persisted data never becomes a load error.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	log       zerolog.Logger
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, log zerolog.Logger) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		log:       log,
	}
}

func (r *ProjectDynamoRepository) LoadAll(ctx context.Context) ([]entities.Project, error) {
	var out []entities.Project

	var startKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range res.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil || it.ID == "" {
				r.log.Warn().Err(err).Msg("skipping undecodable project item")
				continue
			}
			out = append(out, fromProjectItem(it))
		}

		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}

	return out, nil
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, p entities.Project) error {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	actuals := make(map[string]int64, len(p.ActualCosts))
	for c, v := range p.ActualCosts {
		actuals[string(c)] = v
	}

	planned := make(map[string]int64, 8)
	for c, v := range p.PlannedCosts.ToMap() {
		planned[string(c)] = v
	}

	return projectItem{
		ID:            p.ID,
		CustomerName:  p.CustomerName,
		Province:      p.Province,
		SystemSizeKwp: floatToString(p.SystemSizeKwp),
		BudgetTier:    string(p.BudgetTier),
		Status:        string(p.Status),
		PlannedCosts:  planned,
		ActualCosts:   actuals,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	size, _ := strconv.ParseFloat(it.SystemSizeKwp, 64)

	planned := make(map[entities.CostCategory]int64, len(it.PlannedCosts))
	for k, v := range it.PlannedCosts {
		planned[entities.CostCategory(k)] = v
	}

	actuals := make(entities.ActualCosts, len(it.ActualCosts))
	for k, v := range it.ActualCosts {
		c := entities.CostCategory(k)
		if c.Valid() {
			actuals[c] = v
		}
	}

	return entities.Project{
		ID:            it.ID,
		CustomerName:  it.CustomerName,
		Province:      it.Province,
		SystemSizeKwp: size,
		BudgetTier:    entities.BudgetTier(it.BudgetTier),
		Status:        entities.ProjectStatus(it.Status),
		PlannedCosts:  entities.BreakdownFromMap(planned),
		ActualCosts:   actuals,
		Notes:         it.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
