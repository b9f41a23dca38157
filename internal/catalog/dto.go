// AngelaMos | 2026
// dto.go

package catalog

type CreateItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type ItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToItemResponse(item *Item) ItemResponse {
	return ItemResponse{
		ID:   item.ID,
		Name: item.Name,
	}
}

func ToItemResponseList(items []Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(&item))
	}
	return responses
}
