package page

// pageTemplate is the html/template for the landing page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.C.Title}}</title>
  <meta name="description" content="{{.C.Hero.Subheadline}}">
  <link rel="stylesheet" href="{{.StaticBase}}style.css">
</head>
<body{{if .LiveReload}} data-live-reload="{{.PagePath}}ws/reload"{{end}}>
  <nav class="navbar navbar--{{.NavStyle}}{{if .MenuOpen}} navbar--menu-open{{end}}" id="navbar" data-scroll-threshold="{{.Threshold}}" data-testid="navbar">
    <div class="container navbar__inner">
      <a href="{{.HomeHref}}" class="logo" data-nav="home" data-testid="link-logo">{{.C.Brand}}</a>

      <div class="navbar__links">
        {{- range .NavItems}}
        <a href="{{.Href}}" class="navbar__link" data-nav="{{.Anchor}}" data-testid="nav-item-{{.Anchor}}">{{.Label}}</a>
        {{- end}}
        <a href="{{.BookingURL}}" target="_blank" rel="noopener noreferrer" class="btn btn--dark btn--pill btn--sm" data-book-call data-testid="button-nav-cta">Book a Call</a>
      </div>

      <a href="{{.MenuToggleHref}}" class="navbar__toggle" id="menu-toggle" role="button" aria-controls="mobile-menu" aria-expanded="{{if .MenuOpen}}true{{else}}false{{end}}" aria-label="Toggle menu" data-testid="button-mobile-menu">
        <span class="navbar__toggle-open"{{if .MenuOpen}} hidden{{end}}>{{icon "menu" "icon--md"}}</span>
        <span class="navbar__toggle-close"{{if not .MenuOpen}} hidden{{end}}>{{icon "x" "icon--md"}}</span>
      </a>
    </div>

    <div class="mobile-menu" id="mobile-menu"{{if not .MenuOpen}} hidden{{end}} data-testid="mobile-menu">
      <div class="mobile-menu__inner">
        {{- range .NavItems}}
        <a href="{{.Href}}" class="mobile-menu__link" data-nav="{{.Anchor}}">{{.Label}}</a>
        {{- end}}
        <a href="{{.BookingURL}}" target="_blank" rel="noopener noreferrer" class="btn btn--dark btn--block" data-book-call>Book a Call</a>
      </div>
    </div>
  </nav>

  <section id="home" class="hero">
    <div class="hero__background">
      <div class="hero__overlay"></div>
      {{- if .C.Hero.Image}}
      <img src="{{.AssetBase}}{{.C.Hero.Image}}" alt="Abstract Background" class="hero__image">
      {{- end}}
    </div>
    <div class="container hero__content">
      <div class="hero__badge reveal">
        <span class="dot"></span>
        <span>{{.C.Hero.Badge}}</span>
      </div>
      <h1 class="hero__headline reveal" data-testid="text-hero-headline">
        {{.C.Hero.Headline}} <br>
        <span class="hero__accent">{{.C.Hero.HeadlineAccent}}</span>
      </h1>
      <p class="hero__subheadline reveal" data-testid="text-hero-subheadline">{{.C.Hero.Subheadline}}</p>
      <div class="hero__actions reveal">
        <a href="{{.BookingURL}}" target="_blank" rel="noopener noreferrer" class="btn btn--primary btn--pill btn--lg" data-book-call data-testid="button-hero-cta-primary">
          {{.C.Hero.PrimaryCTA}} {{icon "arrow-right" "icon--sm"}}
        </a>
        <a href="{{.PricingHref}}" class="btn btn--light btn--pill btn--lg" data-nav="pricing" data-testid="button-hero-cta-secondary">{{.C.Hero.SecondaryCTA}}</a>
      </div>
      <div class="hero__stats reveal">
        {{- range .C.Hero.Stats}}
        <div>
          <p class="hero__stat-value">{{.Value}}</p>
          <p class="hero__stat-label">{{.Label}}</p>
        </div>
        {{- end}}
      </div>
    </div>
  </section>

  <section class="section section--tinted">
    <div class="container problem">
      <div class="reveal">
        <h2 class="section__headline" data-testid="text-problem-headline">
          {{.C.Problem.Headline}} <br>
          <span class="muted">{{.C.Problem.Subheadline}}</span>
        </h2>
        <p class="problem__body">{{inline .C.Problem.Body}}</p>
      </div>
      <div class="problem__cards">
        {{- range $i, $card := .C.Problem.Cards}}
        <div class="card card--row reveal" data-testid="card-problem-{{$i}}">
          <div class="card__icon card__icon--soft">{{icon $card.Icon "icon--md"}}</div>
          <div>
            <h3 class="card__title">{{$card.Title}}</h3>
            <p class="card__desc">{{$card.Desc}}</p>
          </div>
        </div>
        {{- end}}
      </div>
    </div>
  </section>

  <section id="services" class="section">
    <div class="container">
      <div class="section__intro">
        <h2 class="section__headline" data-testid="text-services-headline">{{.C.Services.Headline}}</h2>
        <p class="section__subheadline">{{.C.Services.Subheadline}}</p>
      </div>
      <div class="services">
        {{- range $i, $card := .C.Services.Cards}}
        <div class="card card--service reveal" data-testid="card-service-{{$i}}">
          <div class="card__icon">{{icon $card.Icon "icon--md"}}</div>
          <h3 class="card__title card__title--lg">{{$card.Title}}</h3>
          <p class="card__desc">{{$card.Desc}}</p>
        </div>
        {{- end}}
      </div>
    </div>
  </section>

  <section class="section section--dark proof">
    <div class="proof__glow proof__glow--top"></div>
    <div class="proof__glow proof__glow--bottom"></div>
    <div class="container proof__inner">
      <div class="proof__header">
        <div>
          <h2 class="section__headline">{{.C.Proof.Headline}}</h2>
          <p class="proof__body">{{.C.Proof.Body}}</p>
        </div>
        <a href="{{.BookingURL}}" target="_blank" rel="noopener noreferrer" class="proof__link" data-book-call data-testid="button-proof-cta">
          {{.C.Proof.LinkText}} {{icon "arrow-right" "icon--sm"}}
        </a>
      </div>
      <div class="proof__stats">
        {{- range $i, $stat := .C.Proof.Stats}}
        <div class="proof__stat reveal" data-testid="card-stat-{{$i}}">
          <div class="proof__stat-icon">{{icon "arrow-up-right" "icon--md"}}</div>
          <h3 class="proof__metric">{{$stat.Metric}}</h3>
          <p class="proof__label">{{$stat.Label}}</p>
          <p class="proof__desc">{{$stat.Desc}}</p>
        </div>
        {{- end}}
      </div>
    </div>
  </section>

  <section id="pricing" class="section section--tinted">
    <div class="container">
      <div class="section__intro">
        <h2 class="section__headline" data-testid="text-pricing-headline">{{.C.Pricing.Headline}}</h2>
        <p class="section__subheadline">{{.C.Pricing.Subheadline}}</p>
      </div>
      <div class="pricing">
        {{- range .C.Pricing.Tiers}}
        <div class="tier{{if .Popular}} tier--popular{{end}}" data-testid="card-pricing-{{lower .Name}}">
          {{- if .Popular}}
          <div class="tier__badge">{{$.C.Pricing.PopularLabel}}</div>
          {{- end}}
          <div class="tier__header">
            <h3 class="tier__name">{{.Name}}</h3>
            <div class="tier__price"><span class="tier__amount">{{.Price}}</span><span class="muted">{{.Period}}</span></div>
            <p class="tier__desc">{{.Desc}}</p>
          </div>
          <ul class="tier__features">
            {{- $popular := .Popular}}
            {{- range .Features}}
            <li class="tier__feature">{{icon "check-circle" (checkClass $popular)}}<span>{{.}}</span></li>
            {{- end}}
          </ul>
        </div>
        {{- end}}
      </div>
      <div class="pricing__setup" data-testid="text-pricing-setup-fee">
        <p>One-time setup fee: <span class="strong">{{.C.Pricing.SetupFee}}</span> {{.C.Pricing.SetupFeeNote}}</p>
      </div>
    </div>
  </section>

  <section id="contact" class="section cta">
    <div class="container">
      <div class="cta__box reveal">
        <h2 class="cta__headline">{{.C.CTA.Headline}}</h2>
        <p class="cta__body">{{inline .C.CTA.Body}}</p>
        <a href="{{.BookingURL}}" target="_blank" rel="noopener noreferrer" class="btn btn--white btn--pill btn--xl" data-book-call data-testid="button-footer-cta">{{.C.CTA.Button}}</a>
      </div>
    </div>
  </section>

  <footer class="footer">
    <div class="container footer__inner">
      <div class="footer__brand">
        <a href="{{.HomeHref}}" class="logo" data-nav="home">{{.C.Brand}}</a>
        <p class="footer__copyright">&copy; {{.Year}} {{.C.Footer.Company}}. All rights reserved.</p>
      </div>
      <div class="footer__links">
        {{- range .FooterLinks}}
        <a href="{{.Href}}" class="footer__link" data-nav="{{.Anchor}}">{{.Label}}</a>
        {{- end}}
      </div>
    </div>
  </footer>

  <script src="{{.StaticBase}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the landing page.
const cssContent = `/* ============ Variables ============ */
:root {
  --background: #ffffff;
  --foreground: #0f172a;
  --muted: #64748b;
  --primary: #4f46e5;
  --primary-soft: rgba(79, 70, 229, 0.1);
  --secondary: #f1f5f9;
  --border: #e2e8f0;
  --radius: 1rem;
  --font-sans: "Inter", system-ui, -apple-system, "Segoe UI", sans-serif;
  --font-display: "Space Grotesk", var(--font-sans);
}

*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  min-height: 100vh;
  overflow-x: hidden;
  background: var(--background);
  color: var(--foreground);
  font-family: var(--font-sans);
  -webkit-font-smoothing: antialiased;
}
::selection { background: var(--primary-soft); color: var(--primary); }
h1, h2, h3 { font-family: var(--font-display); margin: 0; }
p { margin: 0; }
a { color: inherit; text-decoration: none; }
[hidden] { display: none !important; }

.container { max-width: 1280px; margin: 0 auto; padding: 0 1.5rem; }
.muted { color: var(--muted); }
.strong { font-weight: 500; color: var(--foreground); }

/* ============ Icons ============ */
.icon { display: inline-block; vertical-align: middle; flex-shrink: 0; }
.icon--sm { width: 1rem; height: 1rem; }
.icon--md { width: 1.5rem; height: 1.5rem; }
.icon--check { width: 1.25rem; height: 1.25rem; color: var(--muted); }
.icon--check-primary { width: 1.25rem; height: 1.25rem; color: var(--primary); }

/* ============ Buttons ============ */
.btn {
  display: inline-flex; align-items: center; justify-content: center; gap: 0.5rem;
  font-weight: 500; cursor: pointer; border: 1px solid transparent;
  transition: all 0.3s ease;
}
.btn--pill { border-radius: 9999px; }
.btn--sm { padding: 0.625rem 1.25rem; font-size: 0.875rem; }
.btn--lg { padding: 1rem 2rem; }
.btn--xl { padding: 1rem 2.5rem; font-size: 1.125rem; font-weight: 700; }
.btn--block { width: 100%; padding: 0.75rem; border-radius: 0.5rem; }
.btn--dark { background: var(--foreground); color: var(--background); }
.btn--dark:hover { background: var(--primary); color: #fff; }
.btn--primary { background: var(--primary); color: #fff; box-shadow: 0 10px 15px -3px rgba(79, 70, 229, 0.25); }
.btn--primary:hover { background: rgba(79, 70, 229, 0.9); }
.btn--light { background: #fff; border-color: var(--border); color: var(--foreground); }
.btn--light:hover { background: var(--secondary); }
.btn--white { background: #fff; color: var(--foreground); box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.1); }
.btn--white:hover { background: var(--primary); color: #fff; }

/* ============ Navbar ============ */
.navbar {
  position: fixed; top: 0; left: 0; right: 0; z-index: 50;
  transition: all 0.3s ease;
}
.navbar--transparent { background: transparent; padding: 1.5rem 0; }
.navbar--opaque {
  background: rgba(255, 255, 255, 0.8);
  -webkit-backdrop-filter: blur(12px);
  backdrop-filter: blur(12px);
  border-bottom: 1px solid rgba(226, 232, 240, 0.5);
  box-shadow: 0 1px 2px rgba(0, 0, 0, 0.05);
  padding: 1rem 0;
}
.navbar__inner { display: flex; align-items: center; justify-content: space-between; }
.logo { font-family: var(--font-display); font-size: 1.5rem; font-weight: 700; letter-spacing: -0.05em; cursor: pointer; }
.navbar__links { display: none; align-items: center; gap: 2rem; }
.navbar__link { font-size: 0.875rem; font-weight: 500; color: var(--muted); transition: color 0.2s; }
.navbar__link:hover { color: var(--primary); }
.navbar__toggle { display: inline-flex; color: var(--foreground); cursor: pointer; }
.mobile-menu {
  position: absolute; width: 100%;
  background: #fff; border-bottom: 1px solid var(--border);
  animation: menu-in 0.2s ease-out;
}
html:not(.js) .mobile-menu:target { display: block; }
.mobile-menu__inner { display: flex; flex-direction: column; gap: 1rem; padding: 1rem 1.5rem; }
.mobile-menu__link { text-align: left; font-weight: 500; padding: 0.5rem 0; }
@keyframes menu-in { from { opacity: 0; transform: translateY(-0.5rem); } to { opacity: 1; transform: none; } }

/* ============ Hero ============ */
.hero {
  position: relative; min-height: 100vh; display: flex; align-items: center;
  padding-top: 5rem; overflow: hidden;
}
.hero__background {
  position: absolute; inset: 0; z-index: 0;
  background:
    radial-gradient(circle at 20% 20%, rgba(79, 70, 229, 0.18), transparent 45%),
    radial-gradient(circle at 80% 30%, rgba(236, 72, 153, 0.12), transparent 40%),
    radial-gradient(circle at 50% 90%, rgba(14, 165, 233, 0.12), transparent 45%);
}
.hero__overlay { position: absolute; inset: 0; z-index: 1; background: linear-gradient(to bottom, rgba(255,255,255,0.5), rgba(255,255,255,0.2), #fff); }
.hero__image { width: 100%; height: 100%; object-fit: cover; opacity: 0.6; }
.hero__content { position: relative; z-index: 10; max-width: 56rem; text-align: center; }
.hero__badge {
  display: inline-flex; align-items: center; gap: 0.5rem;
  background: rgba(241, 245, 249, 0.5); border: 1px solid rgba(226, 232, 240, 0.5);
  border-radius: 9999px; padding: 0.375rem 1rem; margin-bottom: 2rem;
  font-size: 0.75rem; font-weight: 500; text-transform: uppercase; letter-spacing: 0.05em; color: var(--muted);
}
.dot { display: inline-flex; width: 0.5rem; height: 0.5rem; border-radius: 9999px; background: var(--primary); }
.hero__headline { font-size: 3rem; font-weight: 700; line-height: 1.1; margin-bottom: 1.5rem; }
.hero__accent { background: linear-gradient(to right, var(--foreground), rgba(15, 23, 42, 0.7)); -webkit-background-clip: text; background-clip: text; color: transparent; }
.hero__subheadline { font-size: 1.125rem; color: var(--muted); max-width: 42rem; margin: 0 auto 2.5rem; line-height: 1.625; }
.hero__actions { display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 1rem; }
.hero__stats {
  display: grid; grid-template-columns: repeat(3, 1fr); gap: 2rem;
  max-width: 42rem; margin: 4rem auto 0; padding-top: 2rem; border-top: 1px solid rgba(226, 232, 240, 0.4);
}
.hero__stat-value { font-family: var(--font-display); font-size: 1.5rem; font-weight: 700; }
.hero__stat-label { font-size: 0.75rem; color: var(--muted); text-transform: uppercase; letter-spacing: 0.05em; margin-top: 0.25rem; }

/* ============ Sections ============ */
.section { padding: 6rem 0; background: #fff; }
.section--tinted { background: rgba(241, 245, 249, 0.3); }
.section--dark { background: var(--foreground); color: #fff; }
.section__intro { text-align: center; max-width: 48rem; margin: 0 auto 5rem; }
.section__headline { font-size: 1.875rem; font-weight: 700; margin-bottom: 1rem; }
.section__subheadline { color: var(--muted); font-size: 1.125rem; }

/* ============ Cards ============ */
.card { background: #fff; border: 1px solid var(--border); border-radius: 0.75rem; padding: 1.5rem; box-shadow: 0 1px 2px rgba(0,0,0,0.05); }
.card--row { display: flex; align-items: flex-start; gap: 1rem; }
.card--service { border-radius: var(--radius); padding: 2rem; box-shadow: none; transition: all 0.3s ease; }
.card--service:hover { border-color: rgba(79, 70, 229, 0.5); box-shadow: 0 20px 25px -5px rgba(79, 70, 229, 0.05); }
.card__icon { width: 3rem; height: 3rem; display: flex; align-items: center; justify-content: center; background: var(--secondary); border-radius: 0.75rem; margin-bottom: 1.5rem; transition: all 0.3s ease; }
.card--service:hover .card__icon { background: var(--primary); color: #fff; }
.card__icon--soft { background: var(--primary-soft); color: var(--primary); border-radius: 0.5rem; margin: 0; flex-shrink: 0; }
.card__title { font-weight: 700; font-size: 1.125rem; margin-bottom: 0.25rem; }
.card__title--lg { font-size: 1.25rem; margin-bottom: 0.75rem; }
.card__desc { color: var(--muted); font-size: 0.875rem; line-height: 1.625; }
.card--service .card__desc { font-size: 1rem; }

.problem { display: grid; gap: 4rem; align-items: center; }
.problem__body { color: var(--muted); font-size: 1.125rem; line-height: 1.625; margin-bottom: 2rem; }
.problem__cards { display: grid; gap: 1.5rem; }
.services { display: grid; gap: 2rem; }

/* ============ Proof ============ */
.proof { position: relative; overflow: hidden; }
.proof__glow { position: absolute; width: 24rem; height: 24rem; border-radius: 9999px; filter: blur(64px); }
.proof__glow--top { top: 0; left: 0; background: rgba(79, 70, 229, 0.2); transform: translate(-50%, -50%); }
.proof__glow--bottom { bottom: 0; right: 0; background: rgba(79, 70, 229, 0.1); transform: translate(50%, 50%); }
.proof__inner { position: relative; z-index: 10; }
.proof__header { display: flex; flex-direction: column; justify-content: space-between; gap: 1.5rem; margin-bottom: 4rem; }
.proof__body { color: rgba(255, 255, 255, 0.6); max-width: 36rem; font-size: 1.125rem; }
.proof__link { display: inline-flex; align-items: center; gap: 0.5rem; border-bottom: 1px solid var(--primary); padding-bottom: 0.25rem; align-self: flex-start; transition: color 0.2s; }
.proof__link:hover { color: var(--primary); }
.proof__stats { display: grid; gap: 2rem; }
.proof__stat { background: rgba(255, 255, 255, 0.05); border: 1px solid rgba(255, 255, 255, 0.1); border-radius: var(--radius); padding: 2rem; transition: background 0.2s; }
.proof__stat:hover { background: rgba(255, 255, 255, 0.1); }
.proof__stat-icon { display: inline-flex; padding: 0.75rem; background: rgba(79, 70, 229, 0.2); border-radius: 0.5rem; margin-bottom: 2rem; }
.proof__metric { font-size: 3rem; font-weight: 700; margin-bottom: 0.5rem; }
.proof__label { font-size: 1.125rem; font-weight: 500; margin-bottom: 0.5rem; }
.proof__desc { color: rgba(255, 255, 255, 0.5); font-size: 0.875rem; }

/* ============ Pricing ============ */
.pricing { display: grid; gap: 2rem; max-width: 72rem; margin: 0 auto; }
.tier {
  position: relative; display: flex; flex-direction: column;
  background: #fff; padding: 2rem; border-radius: var(--radius);
  border: 1px solid var(--border); box-shadow: 0 1px 2px rgba(0,0,0,0.05);
  transition: transform 0.3s ease;
}
.tier:hover { transform: translateY(-10px); }
.tier--popular { border-color: var(--primary); box-shadow: 0 25px 50px -12px rgba(79, 70, 229, 0.1), 0 0 0 1px var(--primary); }
.tier__badge {
  position: absolute; top: -1rem; left: 50%; transform: translateX(-50%);
  background: var(--primary); color: #fff; padding: 0.25rem 1rem; border-radius: 9999px;
  font-size: 0.75rem; font-weight: 700; text-transform: uppercase; letter-spacing: 0.05em; white-space: nowrap;
}
.tier__header { margin-bottom: 2rem; }
.tier__name { font-family: var(--font-sans); font-size: 1.25rem; font-weight: 700; margin-bottom: 0.5rem; }
.tier__price { display: flex; align-items: baseline; gap: 0.25rem; }
.tier__amount { font-family: var(--font-display); font-size: 2.25rem; font-weight: 700; }
.tier__desc { color: var(--muted); font-size: 0.875rem; margin-top: 1rem; }
.tier__features { list-style: none; margin: 0 0 2rem; padding: 0; flex: 1; display: grid; gap: 1rem; align-content: start; }
.tier__feature { display: flex; align-items: center; gap: 0.75rem; font-size: 0.875rem; }
.pricing__setup { text-align: center; margin-top: 3rem; color: var(--muted); font-size: 0.875rem; }

/* ============ CTA ============ */
.cta { position: relative; overflow: hidden; text-align: center; }
.cta__box { max-width: 48rem; margin: 0 auto; background: var(--foreground); color: #fff; border-radius: 1.5rem; padding: 3rem; box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.25); }
.cta__headline { font-size: 2.25rem; font-weight: 700; margin-bottom: 1.5rem; }
.cta__body { color: rgba(255, 255, 255, 0.7); font-size: 1.125rem; max-width: 36rem; margin: 0 auto 2.5rem; }
.cta__body strong { color: var(--primary); font-weight: 600; }

/* ============ Footer ============ */
.footer { background: #fff; border-top: 1px solid var(--border); padding: 3rem 0; }
.footer__inner { display: flex; flex-direction: column; justify-content: space-between; align-items: center; gap: 2rem; }
.footer__brand { text-align: center; }
.footer__copyright { font-size: 0.875rem; color: var(--muted); margin-top: 0.5rem; }
.footer__links { display: flex; align-items: center; gap: 2rem; }
.footer__link { font-size: 0.875rem; font-weight: 500; color: var(--muted); transition: color 0.2s; }
.footer__link:hover { color: var(--primary); }

/* ============ Reveal ============ */
.js .reveal { opacity: 0; transform: translateY(20px); transition: opacity 0.6s ease, transform 0.6s ease; }
.js .reveal.is-visible { opacity: 1; transform: none; }
@media (prefers-reduced-motion: reduce) {
  html { scroll-behavior: auto; }
  .js .reveal { opacity: 1; transform: none; transition: none; }
}

/* ============ Responsive ============ */
@media (min-width: 640px) {
  .hero__actions { flex-direction: row; }
}
@media (min-width: 768px) {
  .navbar__links { display: flex; }
  .navbar__toggle, .mobile-menu { display: none !important; }
  .hero__headline { font-size: 4.5rem; }
  .hero__subheadline { font-size: 1.25rem; }
  .hero__stat-value { font-size: 1.875rem; }
  .section__headline { font-size: 2.25rem; }
  .problem { grid-template-columns: repeat(2, 1fr); }
  .services { grid-template-columns: repeat(2, 1fr); }
  .proof__header { flex-direction: row; align-items: flex-end; }
  .proof__link { align-self: auto; }
  .proof__stats { grid-template-columns: repeat(3, 1fr); }
  .cta__box { padding: 5rem; }
  .cta__headline { font-size: 3rem; }
  .footer__inner { flex-direction: row; }
  .footer__brand { text-align: left; }
}
@media (min-width: 1024px) {
  .services { grid-template-columns: repeat(3, 1fr); }
  .pricing { grid-template-columns: repeat(3, 1fr); }
}
`

// jsContent drives the navbar style, smooth navigation and the mobile menu.
const jsContent = `(function() {
  'use strict';

  var navbar = document.getElementById('navbar');
  var toggle = document.getElementById('menu-toggle');
  var menu = document.getElementById('mobile-menu');
  var threshold = parseInt(navbar.getAttribute('data-scroll-threshold'), 10) || 0;

  document.documentElement.classList.add('js');

  // ---- Navbar style ----
  function onScroll() {
    var scrolled = window.scrollY >= threshold;
    navbar.classList.toggle('navbar--opaque', scrolled);
    navbar.classList.toggle('navbar--transparent', !scrolled);
  }

  // ---- Mobile menu ----
  function setMenuOpen(open) {
    menu.hidden = !open;
    navbar.classList.toggle('navbar--menu-open', open);
    toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    toggle.querySelector('.navbar__toggle-open').hidden = open;
    toggle.querySelector('.navbar__toggle-close').hidden = !open;
  }

  toggle.addEventListener('click', function(e) {
    e.preventDefault();
    setMenuOpen(menu.hidden);
  });

  // ---- Smooth navigation ----
  document.querySelectorAll('[data-nav]').forEach(function(link) {
    link.addEventListener('click', function(e) {
      var section = document.getElementById(link.getAttribute('data-nav'));
      if (!section) return;
      e.preventDefault();
      section.scrollIntoView({ behavior: 'smooth' });
      setMenuOpen(false);
    });
  });

  // ---- Reveal on view ----
  var reveals = document.querySelectorAll('.reveal');
  if ('IntersectionObserver' in window) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting) {
          entry.target.classList.add('is-visible');
          observer.unobserve(entry.target);
        }
      });
    }, { threshold: 0.1 });
    reveals.forEach(function(el) { observer.observe(el); });
  } else {
    reveals.forEach(function(el) { el.classList.add('is-visible'); });
  }

  // ---- Live reload ----
  var reloadPath = document.body.getAttribute('data-live-reload');
  var socket = null;
  if (reloadPath && 'WebSocket' in window) {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    socket = new WebSocket(scheme + location.host + reloadPath);
    socket.onmessage = function(e) {
      try {
        if (JSON.parse(e.data).type === 'reload') location.reload();
      } catch (err) {}
    };
  }

  // ---- Lifecycle ----
  window.addEventListener('scroll', onScroll, { passive: true });
  onScroll();

  window.addEventListener('pagehide', function() {
    window.removeEventListener('scroll', onScroll);
    if (socket) socket.close();
  });
  window.addEventListener('pageshow', function(e) {
    if (!e.persisted) return;
    window.addEventListener('scroll', onScroll, { passive: true });
    onScroll();
  });
})();
`
