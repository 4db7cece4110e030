package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/game"
	"github.com/automoto/chinchilla/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ShopUI is the clickable between-waves shop panel.
type ShopUI struct {
	UI      *ebitenui.UI
	Session *game.Session

	titleFace  text.Face
	normalFace text.Face

	coinsLabel     *widget.Label
	skuButtons     []*widget.Button
	continueButton *widget.Button
}

// NewShopUI builds the panel for session. Its buttons buy and continue
// through the session, so the keyboard shortcuts stay valid alongside it.
func NewShopUI(session *game.Session) *ShopUI {
	su := &ShopUI{Session: session}

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(fmt.Sprintf("failed to load shop font: %v", err))
	}
	su.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	su.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}

	su.buildUI()
	return su
}

func (su *ShopUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(panel)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SHOP", &su.titleFace, &widget.LabelColor{
			Idle: config.Yellow,
		}),
	))

	su.coinsLabel = widget.NewLabel(
		widget.LabelOpts.Text("Coins: 0", &su.normalFace, &widget.LabelColor{
			Idle: config.White,
		}),
	)
	panel.AddChild(su.coinsLabel)

	su.skuButtons = su.skuButtons[:0]
	for _, sku := range config.SKUs {
		panel.AddChild(su.buildSKUButton(sku))
	}

	su.continueButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 28)),
		widget.ButtonOpts.Image(su.continueButtonImage()),
		widget.ButtonOpts.Text("Next wave (Enter)", &su.normalFace, &widget.ButtonTextColor{
			Idle:    config.White,
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			su.Session.Continue()
		}),
	)
	panel.AddChild(su.continueButton)

	su.UI = &ebitenui.UI{Container: root}
}

func (su *ShopUI) buildSKUButton(sku config.SKU) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 28)),
		widget.ButtonOpts.Image(su.buttonImage()),
		widget.ButtonOpts.Text(sku.String(), &su.normalFace, &widget.ButtonTextColor{
			Idle:     config.White,
			Hover:    color.RGBA{255, 230, 150, 255},
			Pressed:  color.RGBA{200, 180, 120, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			su.Session.Purchase(sku)
		}),
	)
	su.skuButtons = append(su.skuButtons, btn)
	return btn
}

func (su *ShopUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (su *ShopUI) continueButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// UpdateUI refreshes prices and disables offers the wallet can't cover,
// then lets ebitenui handle the mouse.
func (su *ShopUI) UpdateUI() {
	e := su.Session.ECS()
	su.coinsLabel.Label = fmt.Sprintf("Coins: %d", su.Session.Coins())

	for i, sku := range config.SKUs {
		btn := su.skuButtons[i]
		if textWidget := btn.Text(); textWidget != nil {
			textWidget.Label = skuLabel(i, sku, systems.ShopPrice(e, sku), owned(e, sku))
		}
		btn.GetWidget().Disabled = !systems.CanAfford(e, sku)
	}

	su.UI.Update()
}

// Draw renders the panel on top of the arena.
func (su *ShopUI) Draw(screen *ebiten.Image) {
	su.UI.Draw(screen)
}

func skuLabel(slot int, sku config.SKU, price int, owned bool) string {
	if owned {
		return fmt.Sprintf("%d. %s - owned", slot+1, sku)
	}
	return fmt.Sprintf("%d. %s - %d coins", slot+1, sku, price)
}

func owned(e *ecs.ECS, sku config.SKU) bool {
	return sku == config.SKULaserSight && systems.GetWallet(e).LaserSight
}
