package htmlrender

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
)

// LogoHTML builds a standalone HTML document that renders the brand
// monogram on a layered gradient tile. The body background is
// transparent so screenshots keep the rounded corners.
func LogoHTML(id brand.Identity, style StyleConfig, size int) string {
	radius := size / 5
	fontSize := int(float64(size) * 0.42)
	inner := size - 20

	glowAlpha := 0.0
	if style.ShowGlow {
		glowAlpha = 0.5 * style.Glow
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=%s:wght@%d&display=swap');

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            width: %dpx;
            height: %dpx;
            display: flex;
            justify-content: center;
            align-items: center;
            background: transparent;
        }

        .logo {
            width: %dpx;
            height: %dpx;
            border-radius: %dpx;
            display: flex;
            justify-content: center;
            align-items: center;
            position: relative;
            overflow: hidden;
            background:
                radial-gradient(circle at 30%% 30%%, rgba(255, 255, 255, 0.1) 0%%, transparent 50%%),
                linear-gradient(145deg, %s 0%%, %s 50%%, %s 100%%);
            box-shadow:
                0 8px 32px rgba(0, 0, 0, %.2f),
                0 2px 8px rgba(0, 0, 0, %.2f),
                inset 0 1px 0 rgba(255, 255, 255, %.2f);
        }

        .initials {
            color: %s;
            font-size: %dpx;
            font-weight: %d;
            font-family: '%s', -apple-system, BlinkMacSystemFont, sans-serif;
            letter-spacing: -4px;
            text-shadow:
                0 0 40px rgba(%s, %.2f),
                0 2px 4px rgba(0, 0, 0, %.2f);
        }
    </style>
</head>
<body>
    <div class="logo">
        <span class="initials">%s</span>
    </div>
</body>
</html>`,
		fontQuery(style.Font), style.FontWeight,
		size, size,
		inner, inner, radius,
		blendHex(id.Primary, "#ffffff", 0.08), id.Primary, blendHex(id.Primary, "#000000", 0.15),
		0.3*style.Depth, 0.2*style.Depth, 0.1*style.Depth,
		id.Accent, fontSize, style.FontWeight, style.Font,
		rgbTriplet(id.Accent), glowAlpha, 0.3*style.Depth,
		id.Initials(),
	)
}

// OGHTML builds a standalone HTML document for the Open Graph banner:
// an effect-styled background with the brand name, an optional accent
// line, tagline and bottom bar.
func OGHTML(id brand.Identity, style StyleConfig, width, height int) string {
	accentRGB := rgbTriplet(id.Accent)

	// Longer taglines shrink instead of truncating.
	taglineHTML := ""
	taglineSize := 26
	if t := id.Tagline; t != "" {
		switch {
		case len(t) > 150:
			taglineSize = 20
		case len(t) > 100:
			taglineSize = 22
		case len(t) > 70:
			taglineSize = 24
		}
		taglineHTML = fmt.Sprintf(`<p class="tagline">%s</p>`, t)
	}

	glow1, glow2 := 0.0, 0.0
	if style.ShowGlow {
		glow1 = 0.4 * style.Glow
		glow2 = 0.2 * style.Glow
	}

	bgCSS, extraHTML, extraStyles := effectCSS(id, style)

	cornersHTML := ""
	if style.ShowBlobs && style.Effect == "aurora" {
		cornersHTML = `<div class="corner corner-1"></div><div class="corner corner-2"></div>`
	}
	accentLineHTML := ""
	if style.ShowAccentLine {
		accentLineHTML = `<div class="accent-line"></div>`
	}
	bottomBarHTML := ""
	if style.ShowBottomBar {
		bottomBarHTML = `<div class="accent-bar"></div>`
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=%s:wght@400;700;%d&display=swap');

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            width: %dpx;
            height: %dpx;
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
            position: relative;
            overflow: hidden;
            background: %s;
        }

        %s

        .content {
            position: absolute;
            top: 0; left: 0; right: 0; bottom: 0;
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
            padding: 60px 80px;
            z-index: 10;
        }

        .brand-name {
            color: %s;
            font-size: 88px;
            font-weight: %d;
            font-family: '%s', -apple-system, BlinkMacSystemFont, sans-serif;
            letter-spacing: -3px;
            line-height: 1.1;
            text-align: center;
            text-shadow:
                0 0 60px rgba(%s, %.2f),
                0 0 30px rgba(%s, %.2f),
                0 4px 12px rgba(0, 0, 0, %.2f);
        }

        .accent-line {
            width: 120px;
            height: 4px;
            margin: 24px 0;
            background: linear-gradient(90deg, transparent 0%%, %s 20%%, %s 80%%, transparent 100%%);
            border-radius: 2px;
        }

        .tagline {
            color: %s;
            font-size: %dpx;
            font-weight: 400;
            line-height: 1.5;
            text-align: center;
            max-width: 900px;
            opacity: 0.85;
        }

        .accent-bar {
            position: absolute;
            bottom: 0; left: 0; right: 0;
            height: 6px;
            background: linear-gradient(90deg, %s 0%%, %s 50%%, %s 100%%);
        }

        .corner {
            position: absolute;
            border-radius: 50%%;
            filter: blur(60px);
            z-index: 1;
        }

        .corner-1 {
            width: 300px; height: 300px;
            top: -150px; right: -50px;
            background: %s;
            opacity: %.2f;
        }

        .corner-2 {
            width: 200px; height: 200px;
            bottom: -100px; left: -50px;
            background: %s;
            opacity: %.2f;
        }
    </style>
</head>
<body>
    %s
    %s

    <div class="content">
        <h1 class="brand-name">%s</h1>
        %s
        %s
    </div>

    %s
</body>
</html>`,
		fontQuery(style.Font), style.FontWeight,
		width, height,
		bgCSS,
		extraStyles,
		id.Text, style.FontWeight, style.Font,
		accentRGB, glow1, accentRGB, glow2, 0.4*style.Depth,
		id.Accent, id.Accent,
		blendHex(id.Text, id.Accent, 0.3), taglineSize,
		id.Primary, id.Accent, id.Primary,
		id.Accent, 0.15*style.Decoration,
		id.Primary, 0.12*style.Decoration,
		extraHTML,
		cornersHTML,
		id.Name,
		accentLineHTML,
		taglineHTML,
		bottomBarHTML,
	)
}

// effectCSS builds the background for one effect: the CSS background
// property value, extra HTML elements, and extra style rules.
func effectCSS(id brand.Identity, style StyleConfig) (bgCSS, extraHTML, extraStyles string) {
	accentRGB := rgbTriplet(id.Accent)
	primaryRGB := rgbTriplet(id.Primary)
	dec := style.Decoration
	angle := style.GradientAngle
	bg := id.Background

	baseGradient := func(towards string, factor float64) string {
		return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 100%%)", angle, bg, blendHex(bg, towards, factor))
	}

	switch style.Effect {
	case "mesh":
		bgCSS = fmt.Sprintf(`
                radial-gradient(ellipse 600px 400px at 20%% 20%%, rgba(%s, %.2f) 0%%, transparent 60%%),
                radial-gradient(ellipse 500px 500px at 80%% 30%%, rgba(%s, %.2f) 0%%, transparent 55%%),
                radial-gradient(ellipse 400px 350px at 60%% 70%%, rgba(%s, %.2f) 0%%, transparent 50%%),
                radial-gradient(ellipse 550px 400px at 10%% 80%%, rgba(%s, %.2f) 0%%, transparent 60%%),
                radial-gradient(ellipse 450px 300px at 90%% 85%%, rgba(%s, %.2f) 0%%, transparent 50%%),
                radial-gradient(ellipse 700px 500px at 50%% 50%%, rgba(%s, %.2f) 0%%, transparent 70%%),
                %s`,
			accentRGB, 0.4*dec, primaryRGB, 0.35*dec, accentRGB, 0.3*dec,
			primaryRGB, 0.25*dec, accentRGB, 0.2*dec, primaryRGB, 0.1*dec,
			baseGradient(id.Primary, 0.1))

	case "noise":
		bgCSS = fmt.Sprintf(`linear-gradient(%ddeg, %s 0%%, %s 50%%, %s 100%%)`,
			angle, bg, blendHex(bg, id.Primary, 0.2), blendHex(bg, id.Accent, 0.15))
		extraHTML = `
            <svg width="0" height="0" style="position:absolute">
                <filter id="grain">
                    <feTurbulence type="fractalNoise" baseFrequency="0.65" numOctaves="3" stitchTiles="stitch"/>
                    <feColorMatrix type="saturate" values="0"/>
                </filter>
            </svg>
            <div class="noise-overlay"></div>`
		extraStyles = fmt.Sprintf(`
        .noise-overlay {
            position: absolute;
            top: 0; left: 0; right: 0; bottom: 0;
            filter: url(#grain);
            opacity: %.2f;
            mix-blend-mode: overlay;
            pointer-events: none;
            z-index: 2;
        }`, 0.12*dec)

	case "waves":
		wave1 := blendHex(id.Primary, bg, 0.7)
		wave2 := blendHex(id.Accent, bg, 0.8)
		bgCSS = baseGradient(id.Primary, 0.1)
		extraHTML = fmt.Sprintf(`
            <svg class="wave-bg" viewBox="0 0 1200 630" preserveAspectRatio="none" xmlns="http://www.w3.org/2000/svg">
                <path d="M0,500 C200,450 400,550 600,480 C800,410 1000,520 1200,470 L1200,630 L0,630 Z" fill="%s" opacity="%.2f"/>
                <path d="M0,530 C300,480 500,580 700,510 C900,440 1100,550 1200,500 L1200,630 L0,630 Z" fill="%s" opacity="%.2f"/>
                <path d="M0,560 C250,520 450,600 650,550 C850,500 1050,580 1200,540 L1200,630 L0,630 Z" fill="%s" opacity="%.2f"/>
            </svg>`,
			wave1, 0.4*dec, wave2, 0.3*dec, id.Primary, 0.2*dec)
		extraStyles = `
        .wave-bg {
            position: absolute;
            bottom: 0; left: 0;
            width: 100%; height: 100%;
            z-index: 1;
            pointer-events: none;
        }`

	case "spotlight":
		bgCSS = fmt.Sprintf(`
                radial-gradient(ellipse 1000px 800px at 95%% 5%%, rgba(%s, %.2f) 0%%, transparent 50%%),
                radial-gradient(ellipse 600px 600px at 90%% 10%%, rgba(255, 255, 255, %.2f) 0%%, transparent 40%%),
                radial-gradient(ellipse 400px 400px at 5%% 95%%, rgba(%s, %.2f) 0%%, transparent 50%%),
                %s`,
			accentRGB, 0.5*dec, 0.15*dec, primaryRGB, 0.2*dec,
			baseGradient("#000000", 0.1))

	case "minimal":
		bgCSS = baseGradient(id.Primary, 0.15)

	case "glass":
		bgCSS = baseGradient(id.Primary, 0.15)
		extraHTML = `
            <div class="glass-shape glass-1"></div>
            <div class="glass-shape glass-2"></div>
            <div class="glass-shape glass-3"></div>`
		extraStyles = fmt.Sprintf(`
        .glass-shape {
            position: absolute;
            border-radius: 50%%;
            background: linear-gradient(135deg, rgba(%s, %.2f) 0%%, rgba(%s, %.2f) 100%%);
            filter: blur(40px);
            z-index: 1;
        }
        .glass-1 { width: 400px; height: 400px; top: -100px; right: -50px; }
        .glass-2 {
            width: 300px; height: 300px;
            bottom: -80px; left: -60px;
            background: linear-gradient(135deg, rgba(%s, %.2f) 0%%, rgba(%s, %.2f) 100%%);
        }
        .glass-3 {
            width: 200px; height: 200px;
            top: 40%%; left: 30%%;
            background: rgba(255, 255, 255, %.2f);
            filter: blur(60px);
        }`,
			accentRGB, 0.3*dec, primaryRGB, 0.1*dec,
			primaryRGB, 0.25*dec, accentRGB, 0.1*dec,
			0.1*dec)

	case "dots":
		bgCSS = baseGradient(id.Primary, 0.1)
		extraHTML = `<div class="dots-overlay"></div>`
		extraStyles = fmt.Sprintf(`
        .dots-overlay {
            position: absolute;
            top: 0; left: 0; right: 0; bottom: 0;
            background-image: radial-gradient(circle, rgba(%s, %.2f) 3px, transparent 3px);
            background-size: 30px 30px;
            z-index: 1;
            pointer-events: none;
        }`, accentRGB, 0.25*dec)

	case "diagonal":
		split := blendHex(id.Primary, bg, 0.5)
		accentTint := blendHex(bg, id.Accent, 0.2)
		bgCSS = fmt.Sprintf(`
                linear-gradient(135deg,
                    %s 0%%, %s 45%%,
                    %s 45%%, %s 55%%,
                    %s 55%%, %s 100%%)`,
			bg, bg, split, split, accentTint, accentTint)

	case "geometric":
		bgCSS = baseGradient(id.Primary, 0.08)
		extraHTML = `<div class="geo-overlay"></div>`
		extraStyles = fmt.Sprintf(`
        .geo-overlay {
            position: absolute;
            top: 0; left: 0; right: 0; bottom: 0;
            background-image:
                linear-gradient(0deg, rgba(%s, %.2f) 1px, transparent 1px),
                linear-gradient(90deg, rgba(%s, %.2f) 1px, transparent 1px);
            background-size: 50px 50px;
            z-index: 1;
            pointer-events: none;
        }`, accentRGB, 0.15*dec, accentRGB, 0.15*dec)

	default: // aurora
		bgCSS = fmt.Sprintf(`
                radial-gradient(ellipse 700px 500px at 85%% 15%%, rgba(%s, %.2f) 0%%, rgba(%s, %.2f) 40%%, transparent 70%%),
                radial-gradient(ellipse 500px 400px at 10%% 90%%, rgba(%s, %.2f) 0%%, rgba(%s, %.2f) 50%%, transparent 70%%),
                radial-gradient(ellipse 800px 400px at 50%% 50%%, rgba(%s, %.2f) 0%%, transparent 60%%),
                %s`,
			accentRGB, 0.35*dec, accentRGB, 0.1*dec,
			primaryRGB, 0.25*dec, primaryRGB, 0.05*dec,
			primaryRGB, 0.08*dec,
			baseGradient(id.Primary, 0.15))
	}

	return bgCSS, extraHTML, extraStyles
}

// blendHex mixes two hex colours; factor 0 keeps a, 1 yields b.
// Unparseable inputs fall back to the first colour unchanged.
func blendHex(a, b string, factor float64) string {
	ca, errA := colour.ParseHex(a)
	cb, errB := colour.ParseHex(b)
	if errA != nil || errB != nil {
		return a
	}
	return colour.RGB{
		R: uint8(float64(ca.R)*(1-factor) + float64(cb.R)*factor),
		G: uint8(float64(ca.G)*(1-factor) + float64(cb.G)*factor),
		B: uint8(float64(ca.B)*(1-factor) + float64(cb.B)*factor),
	}.Hex()
}

// rgbTriplet formats a hex colour as "r, g, b" for CSS rgba().
func rgbTriplet(hex string) string {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return "0, 0, 0"
	}
	return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
}

// fontQuery encodes a font family name for a Google Fonts URL.
func fontQuery(font string) string {
	return strings.ReplaceAll(font, " ", "+")
}
