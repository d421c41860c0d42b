package sections

// Stylesheet styles every section layout. It only reads the theme through CSS custom
// properties, so the editor and the exported page share it unchanged.
const Stylesheet = `
*,*::before,*::after{box-sizing:border-box}
body{margin:0;font-family:var(--font-primary),system-ui,sans-serif;color:var(--color-text);background:var(--color-background);line-height:1.6}
h1,h2,h3{font-family:var(--font-secondary),Georgia,serif;line-height:1.2;margin:0 0 .5em}
img{max-width:100%;display:block}
a{color:var(--color-primary)}
.pc-section{padding:4rem 0}
.pc-container{width:min(1120px,92%);margin:0 auto}
.pc-center{text-align:center}
.pc-heading{margin-bottom:2.5rem}
.pc-title{font-size:2rem}
.pc-subtitle,.pc-muted{color:var(--color-text-secondary)}
.pc-accent{color:var(--color-accent);font-weight:600}
.pc-badge{display:inline-block;padding:.25rem .75rem;border-radius:999px;background:var(--color-accent-light);color:var(--color-accent-dark);font-family:var(--font-accent),sans-serif;font-size:.8rem;font-weight:600;margin-bottom:1rem}
.pc-button{display:inline-block;padding:.7rem 1.4rem;border-radius:.5rem;text-decoration:none;font-weight:600;box-shadow:var(--shadow-sm)}
.pc-button-primary{background:var(--color-primary);color:#fff}
.pc-button-primary:hover{background:var(--color-primary-dark)}
.pc-button-secondary{background:var(--color-surface);color:var(--color-primary);border:1px solid var(--color-border)}
.pc-actions{display:flex;gap:.75rem;flex-wrap:wrap;margin-top:1.5rem}
.pc-card{background:var(--color-surface);border:1px solid var(--color-border);border-radius:.75rem;padding:1.5rem;box-shadow:var(--shadow-md)}
.pc-grid{display:grid;gap:1.5rem}
.pc-grid-3{grid-template-columns:repeat(auto-fit,minmax(240px,1fr))}
.pc-split{display:grid;gap:3rem;grid-template-columns:repeat(auto-fit,minmax(300px,1fr));align-items:center}
.pc-split-media,.pc-hero-media,.pc-cta-media{border-radius:1rem;box-shadow:var(--shadow-lg)}
.pc-checklist{list-style:none;padding:0}
.pc-checklist li{margin:.4rem 0}
.pc-checklist i{color:var(--color-success)}
.pc-header-bar{display:flex;align-items:center;justify-content:space-between;gap:1rem}
.pc-header-centered{flex-direction:column}
.pc-sticky{position:sticky;top:0;z-index:10}
header.pc-section{padding:1rem 0;background:var(--color-background);border-bottom:1px solid var(--color-border)}
.pc-logo{font-family:var(--font-accent),sans-serif;font-weight:700;font-size:1.25rem;text-decoration:none;color:var(--color-text)}
.pc-logo-image{height:2.5rem}
.pc-nav{display:flex;gap:1.25rem;align-items:center}
.pc-nav-link{text-decoration:none;color:var(--color-text)}
.pc-nav-toggle{display:none;background:none;border:0;font-size:1.25rem}
@media (max-width:768px){.pc-nav-toggle{display:block}.pc-nav{display:none;flex-direction:column;width:100%}.pc-nav.pc-open{display:flex}}
.pc-hero-inner{display:grid;gap:3rem;align-items:center}
.pc-hero-split{grid-template-columns:repeat(auto-fit,minmax(320px,1fr))}
.pc-hero-centered,.pc-hero-gradient,.pc-hero-image{text-align:center;justify-items:center}
.pc-hero-title{font-size:clamp(2.2rem,5vw,3.5rem)}
.pc-hero-subtitle{font-size:1.2rem;color:var(--color-text-secondary)}
.pc-hero-gradient{background:linear-gradient(135deg,var(--color-primary),var(--color-secondary));color:#fff;padding:3rem 0}
.pc-hero-gradient .pc-hero-subtitle,.pc-hero-image .pc-hero-subtitle{color:rgba(255,255,255,.85)}
.pc-hero-image{background-size:cover;background-position:center;color:#fff;padding:6rem 0}
.pc-features{display:grid;gap:2rem}
.pc-features-grid,.pc-features-cards{grid-template-columns:repeat(auto-fit,minmax(240px,1fr))}
.pc-feature{display:flex;gap:1rem}
.pc-features-grid .pc-feature,.pc-features-cards .pc-feature{flex-direction:column}
.pc-feature-icon{color:var(--color-primary);font-size:1.5rem}
.pc-stats{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fit,minmax(180px,1fr));text-align:center}
.pc-stat-value{font-size:2.5rem;font-weight:700;color:var(--color-primary)}
.pc-stat-suffix{font-size:1.5rem;color:var(--color-primary)}
.pc-gallery{display:grid;gap:1rem;grid-template-columns:repeat(auto-fill,minmax(220px,1fr))}
.pc-gallery-masonry{display:block;columns:3 220px;column-gap:1rem}
.pc-gallery-masonry .pc-gallery-item{break-inside:avoid;margin-bottom:1rem}
.pc-gallery-item{margin:0}
.pc-gallery-item[hidden]{display:none}
.pc-gallery-image{border-radius:.5rem;width:100%}
.pc-filters{display:flex;gap:.5rem;justify-content:center;margin-bottom:1.5rem}
.pc-filter{border:1px solid var(--color-border);background:var(--color-surface);border-radius:999px;padding:.35rem .9rem;cursor:pointer}
.pc-filter-active{background:var(--color-primary);color:#fff}
.pc-lightbox{position:fixed;inset:0;background:rgba(0,0,0,.85);display:flex;align-items:center;justify-content:center;z-index:50}
.pc-lightbox img{max-height:90vh}
.pc-testimonial{margin:0}
.pc-quote{font-style:italic}
.pc-person{display:flex;gap:.75rem;align-items:center}
.pc-person span{display:block;font-size:.9rem}
.pc-avatar{width:3rem;height:3rem;border-radius:999px}
.pc-avatar-lg{width:8rem;height:8rem;border-radius:999px;margin:0 auto 1rem}
.pc-member{text-align:center}
.pc-stars{color:var(--color-warning);margin-bottom:.5rem}
.pc-carousel{position:relative}
.pc-carousel .pc-slide{display:none}
.pc-carousel .pc-slide-active{display:block}
.pc-carousel-controls{display:flex;gap:.5rem;justify-content:center;margin-top:1rem}
.pc-pricing{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fit,minmax(240px,1fr));align-items:start}
.pc-tier-featured{border:2px solid var(--color-primary);box-shadow:var(--shadow-xl)}
.pc-price-amount{font-size:2.25rem;font-weight:700}
.pc-faq{display:grid;gap:.75rem}
.pc-faq-two-column{grid-template-columns:repeat(auto-fit,minmax(320px,1fr))}
.pc-faq-item{border:1px solid var(--color-border);border-radius:.5rem;padding:1rem;background:var(--color-surface)}
.pc-faq-question{font-weight:600;cursor:pointer}
.pc-cta{padding:3rem 0}
.pc-cta-gradient{background:linear-gradient(135deg,var(--color-primary),var(--color-secondary));color:#fff;border-radius:1rem}
.pc-cta-simple{text-align:center}
.pc-cta-inner{display:grid;gap:2rem;align-items:center}
.pc-cta-split .pc-cta-inner{grid-template-columns:repeat(auto-fit,minmax(300px,1fr))}
.pc-contact-list{list-style:none;padding:0}
.pc-contact-list i{color:var(--color-primary);width:1.25rem}
.pc-form{display:grid;gap:1rem}
.pc-form-field{display:grid;gap:.25rem}
.pc-form-field input,.pc-form-field textarea{padding:.6rem;border:1px solid var(--color-border);border-radius:.4rem;font:inherit}
.pc-form-status{color:var(--color-success);min-height:1.5em;margin:0}
.pc-prose{max-width:760px}
.pc-markdown pre{background:var(--color-surface);padding:1rem;overflow:auto}
footer.pc-section{background:var(--color-surface);border-top:1px solid var(--color-border);padding:2.5rem 0}
.pc-footer{display:flex;flex-wrap:wrap;gap:2rem;justify-content:space-between;align-items:center}
.pc-footer-columns{display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));align-items:start}
.pc-footer-links{display:flex;gap:1rem;flex-wrap:wrap}
.pc-footer-columns .pc-footer-links{flex-direction:column}
.pc-socials{display:flex;gap:.75rem}
.pc-social{color:var(--color-text-secondary);font-size:1.2rem}
.pc-copyright{width:100%;font-size:.85rem;color:var(--color-text-secondary)}
.pc-generic,.pc-placeholder{background:var(--color-surface);border:1px dashed var(--color-border)}
`

// EditorStylesheet adds the editing chrome on top of Stylesheet.
const EditorStylesheet = `
.pc-shell{position:relative;border-bottom:1px dashed var(--color-border)}
.pc-toolbar{display:flex;gap:.4rem;justify-content:flex-end;padding:.4rem;background:var(--color-surface)}
.pc-tool{border:1px solid var(--color-border);background:var(--color-background);border-radius:.35rem;padding:.25rem .6rem;cursor:pointer;font-size:.85rem}
.pc-tool-danger{color:var(--color-error);border-color:var(--color-error)}
.pc-editor{padding:1.5rem;background:var(--color-surface)}
.pc-editor-head{display:flex;gap:.75rem;align-items:baseline}
.pc-form-fields{display:grid;gap:1rem;margin:1rem 0}
.pc-field{display:grid;gap:.25rem}
.pc-field input,.pc-field textarea,.pc-field select{padding:.5rem;border:1px solid var(--color-border);border-radius:.35rem;font:inherit}
.pc-field-thumb{max-height:4rem;border-radius:.35rem}
.pc-fieldset{border:1px solid var(--color-border);border-radius:.5rem;padding:1rem;display:grid;gap:.75rem}
.pc-list-item{border-left:3px solid var(--color-primary-light);padding-left:.75rem;display:grid;gap:.5rem}
.pc-code{font-family:ui-monospace,monospace;width:100%}
.pc-notice{padding:.75rem 1rem;border-radius:.5rem;background:var(--color-success);color:#fff}
.pc-notice-error{background:var(--color-error)}
.pc-app{margin:0;background:var(--color-surface);color:var(--color-text);font-family:var(--font-primary),sans-serif}
#pc-notices{position:fixed;right:1rem;bottom:1rem;z-index:50;display:grid;gap:.5rem;max-width:24rem}
.pc-topbar{display:flex;gap:.75rem;align-items:center;padding:.75rem 1.25rem;background:var(--color-background);border-bottom:1px solid var(--color-border);position:sticky;top:0;z-index:40}
.pc-topbar h1{flex:1;margin:0;font-size:1.1rem}
.pc-workspace{display:grid;grid-template-columns:1fr 18rem;min-height:calc(100vh - 3.5rem)}
.pc-canvas{background:var(--color-background);overflow:auto}
.pc-empty{padding:4rem 1rem;text-align:center;color:var(--color-text-secondary)}
.pc-picker{border-bottom:1px solid var(--color-border);padding:.75rem 1.25rem}
.pc-picker summary{cursor:pointer;font-weight:600}
.pc-picker-group{display:grid;grid-template-columns:repeat(auto-fill,minmax(11rem,1fr));gap:.75rem}
.pc-picker-item{display:grid;gap:.25rem;text-align:left;padding:.5rem;border:1px solid var(--color-border);border-radius:.5rem;background:var(--color-surface);cursor:pointer}
.pc-picker-item img{width:100%;border-radius:.35rem}
.pc-theme-panel{padding:1rem;border-left:1px solid var(--color-border);background:var(--color-surface);display:grid;gap:1rem;align-content:start}
.pc-theme-list,.pc-font-list{display:grid;gap:.4rem}
.pc-swatches{display:flex;gap:.25rem}
.pc-swatch{width:1rem;height:1rem;border-radius:50%;border:1px solid var(--color-border)}
.pc-muted{color:var(--color-text-secondary);font-size:.85rem}
.pc-projects{max-width:48rem;margin:2rem auto;padding:0 1rem}
.pc-project-list{list-style:none;padding:0;display:grid;gap:.5rem}
.pc-project-list li{display:flex;justify-content:space-between;padding:.75rem 1rem;background:var(--color-background);border:1px solid var(--color-border);border-radius:.5rem}
`
