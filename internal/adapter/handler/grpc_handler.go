package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/warehouse-mesh/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/core/service"
)

// GRPCHandler exposes the warehouse operations to peers and external callers.
type GRPCHandler struct {
	pb.UnimplementedWarehouseServer
	warehouse *service.WarehouseService
}

func NewGRPCHandler(warehouse *service.WarehouseService) *GRPCHandler {
	return &GRPCHandler{warehouse: warehouse}
}

func (h *GRPCHandler) AddStock(ctx context.Context, req *pb.AddStockRequest) (*pb.AddStockResponse, error) {
	items, err := validateItems(req.GetItems())
	if err != nil {
		return nil, err
	}
	if err := h.warehouse.AddStock(ctx, items); err != nil {
		return nil, status.Errorf(codes.Internal, "add stock: %v", err)
	}
	return &pb.AddStockResponse{}, nil
}

func (h *GRPCHandler) GetItems(ctx context.Context, req *pb.GetItemsRequest) (*pb.GetItemsResponse, error) {
	items, err := validateItems(req.GetItems())
	if err != nil {
		return nil, err
	}
	fulfilled, err := h.warehouse.GetItems(ctx, items)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get items: %v", err)
	}
	return &pb.GetItemsResponse{Items: itemsToProto(fulfilled)}, nil
}

// validateItems enforces the same batch rules as the HTTP surface: every item
// needs an article name and a positive quantity.
func validateItems(items []*pb.Item) ([]domain.Item, error) {
	for _, item := range items {
		if item.GetArticleName() == "" || item.GetQuantity() <= 0 {
			return nil, status.Errorf(codes.InvalidArgument,
				"items need an article name and a positive quantity, got %q (%d)",
				item.GetArticleName(), item.GetQuantity())
		}
	}
	return itemsFromProto(items), nil
}

func itemsFromProto(items []*pb.Item) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		result = append(result, domain.Item{
			ArticleName: item.GetArticleName(),
			Quantity:    int(item.GetQuantity()),
		})
	}
	return result
}

func itemsToProto(items []domain.Item) []*pb.Item {
	result := make([]*pb.Item, 0, len(items))
	for _, item := range items {
		result = append(result, &pb.Item{
			ArticleName: item.ArticleName,
			Quantity:    int64(item.Quantity),
		})
	}
	return result
}
