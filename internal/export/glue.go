package export

// glueScript drives the stateful widgets of an exported page without the editor
// runtime. Forms never leave the page; they show their confirmation message locally.
const glueScript = `(function () {
  "use strict";
  var all = function (sel, root) { return Array.prototype.slice.call((root || document).querySelectorAll(sel)); };

  all("[data-nav-toggle]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var nav = document.getElementById(btn.getAttribute("data-nav-toggle"));
      if (nav) { nav.classList.toggle("pc-open"); }
    });
  });

  all('a[href^="#"]').forEach(function (link) {
    link.addEventListener("click", function (e) {
      var id = link.getAttribute("href").slice(1);
      var target = id && document.getElementById(id);
      if (!target) { return; }
      e.preventDefault();
      target.scrollIntoView({ behavior: "smooth", block: "start" });
    });
  });

  all("[data-accordion]").forEach(function (group) {
    var items = all("details", group);
    items.forEach(function (item) {
      item.addEventListener("toggle", function () {
        if (!item.open) { return; }
        items.forEach(function (other) { if (other !== item) { other.open = false; } });
      });
    });
  });

  var counters = all("[data-count]");
  var runCounter = function (el) {
    var target = parseInt(el.getAttribute("data-count"), 10) || 0;
    var start = null;
    var step = function (ts) {
      if (start === null) { start = ts; }
      var p = Math.min((ts - start) / 1200, 1);
      el.textContent = String(Math.round(target * p));
      if (p < 1) { window.requestAnimationFrame(step); }
    };
    window.requestAnimationFrame(step);
  };
  if ("IntersectionObserver" in window) {
    var seen = new IntersectionObserver(function (entries) {
      entries.forEach(function (entry) {
        if (entry.isIntersecting) { runCounter(entry.target); seen.unobserve(entry.target); }
      });
    });
    counters.forEach(function (el) { seen.observe(el); });
  } else {
    counters.forEach(runCounter);
  }

  all("form[data-local-submit]").forEach(function (form) {
    form.addEventListener("submit", function (e) {
      e.preventDefault();
      var status = form.querySelector(".pc-form-status");
      if (status) { status.textContent = form.getAttribute("data-local-submit"); }
      form.reset();
    });
  });

  all("[data-gallery-filters]").forEach(function (bar) {
    var gallery = document.querySelector('[data-gallery="' + bar.getAttribute("data-gallery-filters") + '"]');
    all("[data-filter]", bar).forEach(function (btn) {
      btn.addEventListener("click", function () {
        var f = btn.getAttribute("data-filter");
        all("[data-filter]", bar).forEach(function (b) { b.classList.toggle("pc-filter-active", b === btn); });
        if (!gallery) { return; }
        all(".pc-gallery-item", gallery).forEach(function (item) {
          item.hidden = f !== "*" && item.getAttribute("data-category") !== f;
        });
      });
    });
  });

  all("[data-lightbox]").forEach(function (link) {
    link.addEventListener("click", function (e) {
      e.preventDefault();
      var overlay = document.createElement("div");
      overlay.className = "pc-lightbox";
      var img = document.createElement("img");
      img.src = link.getAttribute("href");
      overlay.appendChild(img);
      overlay.addEventListener("click", function () { overlay.remove(); });
      document.body.appendChild(overlay);
    });
  });

  all("[data-carousel]").forEach(function (carousel) {
    var id = carousel.getAttribute("data-carousel");
    var slides = all(".pc-slide", carousel);
    var current = 0;
    var show = function (i) {
      if (!slides.length) { return; }
      current = (i + slides.length) % slides.length;
      slides.forEach(function (s, n) { s.classList.toggle("pc-slide-active", n === current); });
    };
    all('[data-carousel-prev="' + id + '"]').forEach(function (b) { b.addEventListener("click", function () { show(current - 1); }); });
    all('[data-carousel-next="' + id + '"]').forEach(function (b) { b.addEventListener("click", function () { show(current + 1); }); });
  });
})();`
