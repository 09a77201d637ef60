package chat

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
)

// mentionPattern matches @img1, @img2, ... or @slug_name tokens
var mentionPattern = regexp.MustCompile(`(?i)@(img\d+|[a-z_][a-z0-9_]*)`)

// ParseMentions extracts mention tokens from text, lowercased, with
// duplicates removed while preserving first-occurrence order.
func ParseMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var unique []string
	for _, m := range matches {
		token := strings.ToLower(m[1])
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	return unique
}

// Resolution is the outcome of resolving the mentions of one message.
// Missing tokens are advisory: a message with unresolvable mentions is
// still processed, the tokens are just reported back as @token strings.
type Resolution struct {
	Paths   []string
	Missing []string
}

// MentionResolver maps mention tokens to attachment file paths
type MentionResolver struct {
	images  repositories.MeetingImageRepository
	assets  repositories.CompanyAssetRepository
	baseDir string
	logger  *zap.Logger
}

// NewMentionResolver creates a mention resolver. baseDir anchors the
// relative file paths stored in the database.
func NewMentionResolver(
	images repositories.MeetingImageRepository,
	assets repositories.CompanyAssetRepository,
	baseDir string,
	logger *zap.Logger,
) *MentionResolver {
	return &MentionResolver{
		images:  images,
		assets:  assets,
		baseDir: baseDir,
		logger:  logger,
	}
}

// ResolveAll parses the message text and resolves every mention to an
// existing file on disk. Tokens of the form img<N> address meeting images
// by display order; everything else addresses company assets by slug.
// The image namespace is resolved before the asset namespace, each in
// first-occurrence order.
func (r *MentionResolver) ResolveAll(ctx context.Context, meetingID, companyID uuid.UUID, text string) Resolution {
	mentions := ParseMentions(text)
	if len(mentions) == 0 {
		return Resolution{}
	}

	var res Resolution
	for _, token := range mentions {
		if order, ok := imageOrder(token); ok {
			r.resolveImage(ctx, meetingID, token, order, &res)
		}
	}
	for _, token := range mentions {
		if _, ok := imageOrder(token); !ok {
			r.resolveAsset(ctx, companyID, token, &res)
		}
	}
	return res
}

// imageOrder reports whether token addresses the image namespace (img
// followed by digits) and returns the display order it names. The whole
// img<digits> space belongs to images: orders start at 1, so img0 is an
// image miss, never an asset slug.
func imageOrder(token string) (int, bool) {
	if !strings.HasPrefix(token, "img") || len(token) == len("img") {
		return 0, false
	}
	n, err := strconv.Atoi(token[3:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *MentionResolver) resolveImage(ctx context.Context, meetingID uuid.UUID, token string, order int, res *Resolution) {
	image, err := r.images.FindByDisplayOrder(ctx, meetingID, order)
	if err != nil {
		res.Missing = append(res.Missing, "@"+token)
		return
	}

	path, ok := r.absolutePath(image.FilePath)
	if !ok {
		r.logger.Warn("meeting image file missing on disk",
			zap.String("meeting_id", meetingID.String()),
			zap.String("path", image.FilePath))
		res.Missing = append(res.Missing, "@"+token)
		return
	}
	res.Paths = append(res.Paths, path)
}

func (r *MentionResolver) resolveAsset(ctx context.Context, companyID uuid.UUID, token string, res *Resolution) {
	asset, err := r.assets.FindBySlug(ctx, companyID, token)
	if err != nil {
		res.Missing = append(res.Missing, "@"+token)
		return
	}

	path, ok := r.absolutePath(asset.FilePath)
	if !ok {
		r.logger.Warn("company asset file missing on disk",
			zap.String("company_id", companyID.String()),
			zap.String("path", asset.FilePath))
		res.Missing = append(res.Missing, "@"+token)
		return
	}
	res.Paths = append(res.Paths, path)
}

// absolutePath normalizes a stored path and verifies the file exists
func (r *MentionResolver) absolutePath(stored string) (string, bool) {
	clean := strings.ReplaceAll(stored, "\\", "/")
	clean = strings.TrimPrefix(clean, "/")
	abs := filepath.Join(r.baseDir, filepath.FromSlash(clean))
	if _, err := os.Stat(abs); err != nil {
		return "", false
	}
	return abs, true
}

// LinkMentionedAssets materializes company assets mentioned in text as
// meeting images so they show up in the meeting's attachment list. Best
// effort: individual failures are logged and skipped.
func (r *MentionResolver) LinkMentionedAssets(ctx context.Context, meetingID, companyID uuid.UUID, text string) {
	for _, token := range ParseMentions(text) {
		if _, ok := imageOrder(token); ok {
			continue
		}

		asset, err := r.assets.FindBySlug(ctx, companyID, token)
		if err != nil {
			continue
		}

		if _, err := r.images.FindByFilePath(ctx, meetingID, asset.FilePath); err == nil {
			continue // already linked
		}

		display := asset.DisplayName
		image := &entities.MeetingImage{
			ID:          uuid.New(),
			MeetingID:   meetingID,
			FilePath:    asset.FilePath,
			Description: &display,
		}
		if err := r.images.Create(ctx, image); err != nil {
			r.logger.Warn("failed to link mentioned asset",
				zap.String("meeting_id", meetingID.String()),
				zap.String("asset", token),
				zap.Error(err))
		}
	}
}
